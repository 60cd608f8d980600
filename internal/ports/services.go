package ports

import (
	"context"

	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/domain/quorum"
	"github.com/jsamuelsen11/formflow/internal/domain/schema"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

// FormService defines the service port for form operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method returns domain.ErrNotFound for an unknown form name.
type FormService interface {
	// ListForms returns a summary of every loaded form.
	ListForms(ctx context.Context) ([]form.Summary, error)

	// Schema assembles the complete schema of a form.
	Schema(ctx context.Context, name string) (*schema.Schema, error)

	// Validate runs the validation rules of every input field against data.
	// Rule failures are reported in the Report, not as an error.
	Validate(ctx context.Context, name string, data map[string]any) (*validation.Report, error)

	// VisibleSteps returns the workflow steps whose show condition holds for
	// data.
	VisibleSteps(ctx context.Context, name string, data map[string]any) ([]workflow.Step, error)

	// Calculate evaluates every calculated field of a form for data and
	// reports the confirmation progress of each.
	Calculate(ctx context.Context, name string, data map[string]any) (*Calculation, error)

	// QuorumStatus returns the confirmation progress of a calculated field.
	// subject may be empty; CanContribute is then false.
	// Returns domain.ErrNotFound for an unknown field key.
	QuorumStatus(ctx context.Context, name, key, subject string) (*QuorumView, error)

	// Confirm records a subject's confirmation of a calculated field. The
	// subject is taken from req.Subject or derived from req.Data. Calls that
	// do not count are reported in the Outcome, not as an error.
	// Returns domain.ErrNotFound for an unknown field key.
	Confirm(ctx context.Context, name, key string, req ConfirmRequest) (*quorum.Outcome, error)
}

// CalculatedValue is the evaluation of one calculated field.
type CalculatedValue struct {
	Key   string
	Label string
	Unit  string
	// Value is nil when the field could not be evaluated.
	Value *float64
	// Missing lists required inputs without a value.
	Missing []string
	// Error describes a failed evaluation. Empty on success or when inputs
	// are missing.
	Error         string
	Quorum        quorum.Status
	CanContribute bool
}

// Calculation holds the evaluations of a form's calculated fields in
// registration order.
type Calculation struct {
	Subject string
	Values  []CalculatedValue
}

// QuorumView is the confirmation progress of a calculated field as seen by a
// subject.
type QuorumView struct {
	Key           string
	Status        quorum.Status
	Subject       string
	CanContribute bool
}

// ConfirmRequest identifies the confirming subject, either directly or by
// the record whose natural key identifies it.
type ConfirmRequest struct {
	Subject string
	Data    map[string]any
}
