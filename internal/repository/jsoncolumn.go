package repository

import (
	"bytes"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

var errEmptyColumn = errors.New("empty JSON string")

// DecodeJSONColumn decodes a JSON text column into dst. Depending on the
// driver the column arrives either as the JSON value itself or as a JSON
// string that contains it; both are accepted. A null or missing column
// leaves dst untouched. Anything that does not fit dst is reported as a
// MalformedStoredDataError.
func DecodeJSONColumn(raw []byte, dst interface{}, table, column, recordID string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	malformed := func(err error) error {
		return &models.MalformedStoredDataError{Table: table, Column: column, RecordID: recordID, Err: err}
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return malformed(err)
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return malformed(errEmptyColumn)
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return malformed(err)
	}
	return nil
}

// EncodeJSONColumn marshals v for storage in a JSON text column. The
// result serializes as raw JSON in PostgREST bodies and as text through gorm.
func EncodeJSONColumn(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
