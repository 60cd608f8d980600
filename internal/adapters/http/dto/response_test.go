package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsamuelsen11/formflow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/domain/quorum"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
	"github.com/jsamuelsen11/formflow/internal/ports"
)

func float64Ptr(v float64) *float64 { return &v }

func TestToFormListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFormListResponse([]form.Summary{
		{Name: "pension", Title: "Mitarbeiterdaten", Fields: 6, Calculations: 4, Steps: 4},
	})

	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1", got.Count)
	}
	want := dto.FormResponse{Name: "pension", Title: "Mitarbeiterdaten", Fields: 6, Calculations: 4, Steps: 4}
	if got.Forms[0] != want {
		t.Errorf("Forms[0] = %+v, want %+v", got.Forms[0], want)
	}

	empty := dto.ToFormListResponse(nil)
	raw, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if !strings.Contains(string(raw), `"forms":[]`) {
		t.Errorf("JSON = %s, want an empty forms array", raw)
	}
}

func TestToValidationResponse(t *testing.T) {
	t.Parallel()

	t.Run("valid report serializes an empty array", func(t *testing.T) {
		t.Parallel()

		got := dto.ToValidationResponse(&validation.Report{})
		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("json.Marshal error: %v", err)
		}
		if string(raw) != `{"valid":true,"failures":[]}` {
			t.Errorf("JSON = %s, want {\"valid\":true,\"failures\":[]}", raw)
		}
	})

	t.Run("failures are kept in order", func(t *testing.T) {
		t.Parallel()

		got := dto.ToValidationResponse(&validation.Report{Failures: []validation.Failure{
			{Field: "geburtsdatum", Rule: "required", Message: "Pflichtfeld"},
			{Field: "letztes_gehalt", Rule: "positive", Message: "Muss positiv sein"},
		}})
		if got.Valid {
			t.Error("Valid = true, want false")
		}
		if len(got.Failures) != 2 || got.Failures[1].Field != "letztes_gehalt" {
			t.Errorf("Failures = %+v, want geburtsdatum then letztes_gehalt", got.Failures)
		}
	})
}

func TestToStepListResponse(t *testing.T) {
	t.Parallel()

	cond, err := workflow.ParseCondition("has_value:austrittsdatum")
	if err != nil {
		t.Fatalf("ParseCondition error: %v", err)
	}
	got := dto.ToStepListResponse([]workflow.Step{
		{Order: 1, Title: "Stammdaten", ComponentType: workflow.ComponentForm},
		{Order: 2, Title: "Unverfallbarkeit", Groups: []string{"berechnungen"}, ShowIf: cond, ComponentType: workflow.ComponentCalculation},
	})

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Steps[0].ShowIf != nil {
		t.Errorf("Steps[0].ShowIf = %q, want nil", *got.Steps[0].ShowIf)
	}
	if got.Steps[1].ShowIf == nil || *got.Steps[1].ShowIf != "has_value:austrittsdatum" {
		t.Errorf("Steps[1].ShowIf = %v, want has_value:austrittsdatum", got.Steps[1].ShowIf)
	}

	raw, err := json.Marshal(got.Steps[0])
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	for _, want := range []string{`"show_if":null`, `"groups":[]`, `"component_type":"form"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("JSON = %s, want it to contain %s", raw, want)
		}
	}
}

func TestToCalculationResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCalculationResponse(&ports.Calculation{
		Subject: "1960-05-01_1985-04-01",
		Values: []ports.CalculatedValue{
			{
				Key:           "grundrente_alt",
				Label:         "Grundrente (alt)",
				Unit:          "EUR",
				Value:         float64Ptr(1050),
				Quorum:        quorum.Status{Count: 1, Threshold: 3, Required: true},
				CanContribute: true,
			},
			{Key: "mn_faktor", Label: "m/n-Faktor", Missing: []string{"austrittsdatum"}},
		},
	})

	if got.Subject != "1960-05-01_1985-04-01" {
		t.Errorf("Subject = %q, want the natural key", got.Subject)
	}
	if len(got.Values) != 2 {
		t.Fatalf("len(Values) = %d, want 2", len(got.Values))
	}
	first := got.Values[0]
	if first.Value == nil || *first.Value != 1050 {
		t.Errorf("Values[0].Value = %v, want 1050", first.Value)
	}
	wantQuorum := dto.QuorumResponse{Count: 1, Threshold: 3, Required: true}
	if first.Quorum != wantQuorum {
		t.Errorf("Values[0].Quorum = %+v, want %+v", first.Quorum, wantQuorum)
	}

	raw, err := json.Marshal(got.Values[1])
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	for _, want := range []string{`"value":null`, `"missing":["austrittsdatum"]`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("JSON = %s, want it to contain %s", raw, want)
		}
	}
	if strings.Contains(string(raw), `"unit"`) || strings.Contains(string(raw), `"error"`) {
		t.Errorf("JSON = %s, want unit and error omitted", raw)
	}
}

func TestToQuorumViewResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToQuorumViewResponse(&ports.QuorumView{
		Key:    "grundrente_neu",
		Status: quorum.Status{Count: 3, Threshold: 3, Verified: true, Required: true},
	})

	if !got.Quorum.Verified || got.Quorum.Count != 3 {
		t.Errorf("Quorum = %+v, want verified with count 3", got.Quorum)
	}
	if got.CanContribute {
		t.Error("CanContribute = true, want false")
	}
}

func TestToConfirmResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToConfirmResponse(&quorum.Outcome{
		Counted: false,
		Reason:  quorum.ReasonAlreadyContributed,
		Status:  quorum.Status{Count: 2, Threshold: 3, Required: true},
	})

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	want := `{"counted":false,"reason":"already_contributed","quorum":{"count":2,"threshold":3,"verified":false,"required":true}}`
	if string(raw) != want {
		t.Errorf("JSON = %s, want %s", raw, want)
	}
}
