// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/domain/quorum"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
	"github.com/jsamuelsen11/formflow/internal/ports"
)

// FormResponse summarizes a form in HTTP responses.
type FormResponse struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Fields       int    `json:"fields"`
	Calculations int    `json:"calculations"`
	Steps        int    `json:"steps"`
}

// FormListResponse represents a list of forms in HTTP responses.
type FormListResponse struct {
	Forms []FormResponse `json:"forms"`
	Count int            `json:"count"`
}

// ToFormListResponse converts form summaries to an HTTP list response DTO.
func ToFormListResponse(forms []form.Summary) FormListResponse {
	items := make([]FormResponse, len(forms))
	for i, f := range forms {
		items[i] = FormResponse(f)
	}
	return FormListResponse{
		Forms: items,
		Count: len(items),
	}
}

// ValidationResponse is the outcome of validating a record. Failures is
// never null.
type ValidationResponse struct {
	Valid    bool                 `json:"valid"`
	Failures []validation.Failure `json:"failures"`
}

// ToValidationResponse converts a validation report to an HTTP response DTO.
func ToValidationResponse(r *validation.Report) ValidationResponse {
	failures := r.Failures
	if failures == nil {
		failures = []validation.Failure{}
	}
	return ValidationResponse{
		Valid:    r.Valid(),
		Failures: failures,
	}
}

// StepResponse is a workflow step as shown to a client. ShowIf carries the
// condition name, or null for unconditional steps.
type StepResponse struct {
	Order         int      `json:"order"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Groups        []string `json:"groups"`
	ComponentType string   `json:"component_type"`
	ShowIf        *string  `json:"show_if"`
}

// StepListResponse represents the visible steps of a record.
type StepListResponse struct {
	Steps []StepResponse `json:"steps"`
	Count int            `json:"count"`
}

// ToStepListResponse converts workflow steps to an HTTP list response DTO.
func ToStepListResponse(steps []workflow.Step) StepListResponse {
	items := make([]StepResponse, len(steps))
	for i := range steps {
		s := &steps[i]
		groups := s.Groups
		if groups == nil {
			groups = []string{}
		}
		items[i] = StepResponse{
			Order:         s.Order,
			Title:         s.Title,
			Description:   s.Description,
			Groups:        groups,
			ComponentType: s.ComponentType.String(),
		}
		if name := s.ConditionName(); name != "" {
			items[i].ShowIf = &name
		}
	}
	return StepListResponse{
		Steps: items,
		Count: len(items),
	}
}

// QuorumResponse is the confirmation progress of a calculated field.
type QuorumResponse struct {
	Count     int  `json:"count"`
	Threshold int  `json:"threshold"`
	Verified  bool `json:"verified"`
	Required  bool `json:"required"`
}

func toQuorumResponse(s quorum.Status) QuorumResponse {
	return QuorumResponse(s)
}

// CalculatedValueResponse is the evaluation of one calculated field. Value
// is null when the field could not be evaluated; Missing or Error say why.
type CalculatedValueResponse struct {
	Key           string         `json:"key"`
	Label         string         `json:"label"`
	Unit          string         `json:"unit,omitempty"`
	Value         *float64       `json:"value"`
	Missing       []string       `json:"missing,omitempty"`
	Error         string         `json:"error,omitempty"`
	Quorum        QuorumResponse `json:"quorum"`
	CanContribute bool           `json:"can_contribute"`
}

// CalculationResponse holds the evaluated calculated fields of a form.
type CalculationResponse struct {
	Subject string                    `json:"subject,omitempty"`
	Values  []CalculatedValueResponse `json:"values"`
}

// ToCalculationResponse converts a calculation to an HTTP response DTO.
func ToCalculationResponse(c *ports.Calculation) CalculationResponse {
	values := make([]CalculatedValueResponse, len(c.Values))
	for i := range c.Values {
		v := &c.Values[i]
		values[i] = CalculatedValueResponse{
			Key:           v.Key,
			Label:         v.Label,
			Unit:          v.Unit,
			Value:         v.Value,
			Missing:       v.Missing,
			Error:         v.Error,
			Quorum:        toQuorumResponse(v.Quorum),
			CanContribute: v.CanContribute,
		}
	}
	return CalculationResponse{
		Subject: c.Subject,
		Values:  values,
	}
}

// QuorumViewResponse is the confirmation progress of a field as seen by an
// optional subject.
type QuorumViewResponse struct {
	Key           string         `json:"key"`
	Quorum        QuorumResponse `json:"quorum"`
	Subject       string         `json:"subject,omitempty"`
	CanContribute bool           `json:"can_contribute"`
}

// ToQuorumViewResponse converts a quorum view to an HTTP response DTO.
func ToQuorumViewResponse(v *ports.QuorumView) QuorumViewResponse {
	return QuorumViewResponse{
		Key:           v.Key,
		Quorum:        toQuorumResponse(v.Status),
		Subject:       v.Subject,
		CanContribute: v.CanContribute,
	}
}

// ConfirmResponse reports whether a confirmation counted and the resulting
// progress.
type ConfirmResponse struct {
	Counted bool           `json:"counted"`
	Reason  string         `json:"reason"`
	Quorum  QuorumResponse `json:"quorum"`
}

// ToConfirmResponse converts a confirmation outcome to an HTTP response DTO.
func ToConfirmResponse(o *quorum.Outcome) ConfirmResponse {
	return ConfirmResponse{
		Counted: o.Counted,
		Reason:  string(o.Reason),
		Quorum:  toQuorumResponse(o.Status),
	}
}
