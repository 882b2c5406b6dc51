package models

import "fmt"

// MalformedStoredDataError reports a JSON text column that could not be
// decoded into its expected shape.
type MalformedStoredDataError struct {
	Table    string
	Column   string
	RecordID string
	Err      error
}

func (e *MalformedStoredDataError) Error() string {
	return fmt.Sprintf("malformed %s.%s for record %s: %v", e.Table, e.Column, e.RecordID, e.Err)
}

func (e *MalformedStoredDataError) Unwrap() error {
	return e.Err
}
