package form

import (
	"testing"

	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
)

func TestForm_SubjectID(t *testing.T) {
	t.Parallel()

	f := New("pension", field.RecordType{Name: "MitarbeiterFormular"})
	data := map[string]any{"geburtsdatum": "1965-04-12", "eintrittsdatum": "1990-01-01"}

	if got := f.SubjectID(data); got != "" {
		t.Errorf("SubjectID() without subject fields = %q, want empty", got)
	}

	f.SubjectFields = []string{"geburtsdatum", "eintrittsdatum"}
	if got := f.SubjectID(data); got != "1965-04-12_1990-01-01" {
		t.Errorf("SubjectID() = %q, want 1965-04-12_1990-01-01", got)
	}
}

func TestForm_Summary(t *testing.T) {
	t.Parallel()

	f := New("pension", field.RecordType{
		Name:  "MitarbeiterFormular",
		Title: "Mitarbeiterdaten",
		Attributes: []field.Attribute{
			{Name: "a", Type: field.TypeText},
			{Name: "b", Type: field.TypeDate},
		},
	})
	one := func(map[string]any) (float64, error) { return 1, nil }
	if err := f.Calcs.Register(calc.NewDefinition("x", "X", "1", nil, one)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := f.Steps.Register(workflow.Step{Order: 1, Title: "Eingabe"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	want := Summary{Name: "pension", Title: "Mitarbeiterdaten", Fields: 2, Calculations: 1, Steps: 1}
	if got := f.Summary(); got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}
