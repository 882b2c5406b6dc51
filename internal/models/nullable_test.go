package models

import (
	"encoding/json"
	"testing"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "field present with string value",
			json:      `{"content": "hello"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "hello",
		},
		{
			name:      "field present with null value",
			json:      `{"content": null}`,
			wantSet:   true,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field absent",
			json:      `{}`,
			wantSet:   false,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field present with empty string",
			json:      `{"content": ""}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Content Nullable[string] `json:"content"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Content.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Content.Set, tt.wantSet)
			}
			if result.Content.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Content.Valid, tt.wantValid)
			}
			if result.Content.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", result.Content.Value, tt.wantValue)
			}
		})
	}
}

func TestNullable_WrongType(t *testing.T) {
	var result struct {
		Content Nullable[string] `json:"content"`
	}
	if err := json.Unmarshal([]byte(`{"content": 42}`), &result); err == nil {
		t.Fatal("expected error for number into string field")
	}
}

func TestNullable_ToPtr(t *testing.T) {
	if p := Null[string]().ToPtr(); p != nil {
		t.Errorf("ToPtr() on null = %v, want nil", *p)
	}
	if p := (Nullable[string]{}).ToPtr(); p != nil {
		t.Errorf("ToPtr() on absent = %v, want nil", *p)
	}

	n := NullableOf("hello")
	p := n.ToPtr()
	if p == nil || *p != "hello" {
		t.Fatalf("ToPtr() = %v, want pointer to hello", p)
	}
	*p = "changed"
	if n.Value != "hello" {
		t.Error("ToPtr() must not alias the stored value")
	}
}

func TestNullable_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		n    Nullable[float64]
		want string
	}{
		{"valid", NullableOf(7.5), "7.5"},
		{"null", Null[float64](), "null"},
		{"absent", Nullable[float64]{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.n)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUpdateJournalEntryRequest_IsEmpty(t *testing.T) {
	var empty UpdateJournalEntryRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatal(err)
	}
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for {}")
	}

	var clear UpdateJournalEntryRequest
	if err := json.Unmarshal([]byte(`{"transcription": null}`), &clear); err != nil {
		t.Fatal(err)
	}
	if clear.IsEmpty() {
		t.Error("IsEmpty() = true for explicit null")
	}
}

func TestJournalEntry_EffectiveText(t *testing.T) {
	tests := []struct {
		name  string
		entry JournalEntry
		want  string
	}{
		{"transcription wins", JournalEntry{Content: "typed", Transcription: "spoken"}, "spoken"},
		{"falls back to content", JournalEntry{Content: "typed"}, "typed"},
		{"empty transcription ignored", JournalEntry{Content: "typed", Transcription: ""}, "typed"},
		{"neither", JournalEntry{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.EffectiveText(); got != tt.want {
				t.Errorf("EffectiveText() = %q, want %q", got, tt.want)
			}
		})
	}
}
