package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/formflow/internal/domain"
)

const maxSubjectLength = 256

// RecordRequest is the JSON body of the validate, steps and calculations
// endpoints. Data holds the record's field values keyed by field id.
type RecordRequest struct {
	Data map[string]any `json:"data"`
}

// Validate checks that a record was sent. An empty object is a valid record.
// Returns a *domain.ValidationError if any checks fail.
func (r *RecordRequest) Validate() error {
	if r.Data == nil {
		return &domain.ValidationError{Fields: map[string]string{"data": domain.MsgRequired}}
	}
	return nil
}

// ConfirmRequest is the JSON body of the confirmations endpoint. The
// confirming subject is either named directly or derived from the record.
// A request with neither is accepted and reported as not counted.
type ConfirmRequest struct {
	Subject string         `json:"subject,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Validate checks the subject's shape.
// Returns a *domain.ValidationError if any checks fail.
func (r *ConfirmRequest) Validate() error {
	fields := make(map[string]string)

	if r.Subject != strings.TrimSpace(r.Subject) {
		fields["subject"] = "must not have leading or trailing whitespace"
	}
	if len(r.Subject) > maxSubjectLength {
		fields["subject"] = fmt.Sprintf("must be at most %d characters", maxSubjectLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
