package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

type checkInInput struct {
	Mood   string   `json:"mood" validate:"required"`
	Energy *float64 `json:"energy" validate:"omitempty,gte=0,lte=10"`
	Period string   `json:"period" validate:"omitempty,oneof=week month"`
}

func TestFromBindingError_ValidationErrors(t *testing.T) {
	energy := 11.0
	err := validator.New().Struct(checkInInput{Energy: &energy, Period: "year"})

	problem := FromBindingError("req-1", err)
	if problem.Type != TypeValidation || problem.Status != http.StatusBadRequest {
		t.Fatalf("problem = %+v", problem)
	}

	got := make(map[string]FieldError)
	for _, fe := range problem.Errors {
		got[fe.Field] = fe
	}
	if got["mood"].Code != "required" || got["mood"].Message != "is required" {
		t.Errorf("mood error = %+v", got["mood"])
	}
	if got["energy"].Message != "must be at most 10" {
		t.Errorf("energy error = %+v", got["energy"])
	}
	if got["period"].Message != "must be one of: week month" {
		t.Errorf("period error = %+v", got["period"])
	}
}

func TestFromBindingError_TypeError(t *testing.T) {
	var dst struct {
		Score float64 `json:"score"`
	}
	err := json.Unmarshal([]byte(`{"score":"high"}`), &dst)

	problem := FromBindingError("req-2", err)
	if problem.Type != TypeValidation || len(problem.Errors) != 1 || problem.Errors[0].Field != "score" {
		t.Errorf("problem = %+v", problem)
	}
}

func TestFromBindingError_Other(t *testing.T) {
	problem := FromBindingError("req-3", errors.New("unexpected EOF"))
	if problem.Type != TypeBadRequest {
		t.Errorf("Type = %q, want bad request", problem.Type)
	}
}
