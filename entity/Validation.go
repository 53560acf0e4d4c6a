package entity

import "strings"

// FieldError is a single field-level validation failure, reported back
// to the submitting UI.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates schema/enum violations. It is returned
// before anything is persisted; past this boundary input is trusted.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns the collected failures as an error, or nil when empty.
func (v ValidationError) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
