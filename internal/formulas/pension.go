// Package formulas implements the compute functions behind the pension
// form's calculated fields.
//
// All dates are calendar dates; day counts are exact. The statutory
// retirement age follows the SGB VI transition rules.
package formulas

import (
	"fmt"
	"math"
	"time"

	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// Compute function names used in declaration files.
const (
	FuncServiceYears = "dienstzeit"
	FuncMNFactor     = "mn_faktor"
	FuncPensionOld   = "grundrente_alt"
	FuncPensionNew   = "grundrente_neu"
)

// Input field names read by the compute functions.
const (
	fieldBirth  = "geburtsdatum"
	fieldEntry  = "eintrittsdatum"
	fieldExit   = "austrittsdatum"
	fieldSalary = "letztes_gehalt"
)

// Plan holds the pension plan parameters.
type Plan struct {
	// Cutoff separates the old (flat amount) from the new (salary based)
	// rules by entry date.
	Cutoff time.Time
	// OldAmountPerYear is the monthly pension per year of service under the
	// old rules.
	OldAmountPerYear float64
	// NewRatePerYear is the share of the last salary earned per year of
	// service under the new rules.
	NewRatePerYear float64
	// NewMaxRate caps the new-rules pension as a share of the last salary.
	NewMaxRate float64
}

// DefaultPlan returns the parameters of the reference pension plan.
func DefaultPlan() Plan {
	return Plan{
		Cutoff:           time.Date(2003, 1, 1, 0, 0, 0, 0, time.UTC),
		OldAmountPerYear: 30.0,
		NewRatePerYear:   0.002,
		NewMaxRate:       0.05,
	}
}

// Plan configuration keys.
const (
	KeyCutoff           = "stichtag"
	KeyOldAmountPerYear = "alt_betrag_pro_jahr"
	KeyNewRatePerYear   = "neu_versorgungssatz"
	KeyNewMaxRate       = "neu_max_versorgungsgrad"
)

// PlanFromConfig overlays the form configuration onto DefaultPlan. Unknown
// keys are ignored; known keys with unusable values are an error.
func PlanFromConfig(cfg map[string]any) (Plan, error) {
	p := DefaultPlan()

	if v, ok := cfg[KeyCutoff]; ok {
		d, ok := value.Date(v)
		if !ok {
			return Plan{}, fmt.Errorf("%s: invalid date %v", KeyCutoff, v)
		}
		p.Cutoff = d
	}

	for key, dst := range map[string]*float64{
		KeyOldAmountPerYear: &p.OldAmountPerYear,
		KeyNewRatePerYear:   &p.NewRatePerYear,
		KeyNewMaxRate:       &p.NewMaxRate,
	} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		f, ok := value.Float(v)
		if !ok || f < 0 {
			return Plan{}, fmt.Errorf("%s: invalid amount %v", key, v)
		}
		*dst = f
	}

	return p, nil
}

// Functions returns the compute functions of p by name.
func (p Plan) Functions() map[string]calc.ComputeFunc {
	return map[string]calc.ComputeFunc{
		FuncServiceYears: p.serviceYears,
		FuncMNFactor:     p.mnFactorPercent,
		FuncPensionOld:   p.pensionOld,
		FuncPensionNew:   p.pensionNew,
		FuncVesting:      p.vesting,
	}
}

// Library resolves compute functions for a form configuration.
func Library(cfg map[string]any) (map[string]calc.ComputeFunc, error) {
	p, err := PlanFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("pension plan: %w", err)
	}
	return p.Functions(), nil
}

// RetirementAge returns the statutory retirement age in years for someone
// born in birth's year: 65 before 1947, one extra month per year of birth up
// to 1958, two extra months per year from 1959 and 67 from 1964.
func RetirementAge(birth time.Time) float64 {
	year := birth.Year()
	switch {
	case year < 1947:
		return 65
	case year >= 1964:
		return 67
	case year <= 1958:
		return 65 + float64(year-1946)/12
	default:
		return 66 + float64((year-1958)*2)/12
	}
}

// RetirementStart returns the first day of the month in which the statutory
// retirement age is reached.
func RetirementStart(birth time.Time) time.Time {
	age := RetirementAge(birth)
	years := int(age)
	months := int(math.Round((age - float64(years)) * 12))

	year := birth.Year() + years
	month := int(birth.Month()) + months
	if month > 12 {
		year++
		month -= 12
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// ServiceYears returns the completed years from entry to the planned
// retirement start. Never negative.
func ServiceYears(entry, birth time.Time) int {
	return completedYears(entry, RetirementStart(birth))
}

// MNFactor returns the ratio of actual service days m (entry to exit) to
// potential service days n (entry to retirement start). The factor is 0 when
// n is 0.
func MNFactor(entry, exit, birth time.Time) (factor float64, m, n int) {
	start := RetirementStart(birth)
	m = days(entry, exit)
	n = days(entry, start)
	if n == 0 {
		return 0, m, n
	}
	return float64(m) / float64(n), m, n
}

func days(from, to time.Time) int {
	return int(value.Day(to).Sub(value.Day(from)).Hours() / 24)
}

func (p Plan) serviceYears(in map[string]any) (float64, error) {
	d, err := requireDates(in, fieldEntry, fieldBirth)
	if err != nil {
		return 0, err
	}
	return float64(ServiceYears(d[0], d[1])), nil
}

func (p Plan) mnFactorPercent(in map[string]any) (float64, error) {
	d, err := requireDates(in, fieldEntry, fieldExit, fieldBirth)
	if err != nil {
		return 0, err
	}
	f, _, _ := MNFactor(d[0], d[1], d[2])
	return f * 100, nil
}

func (p Plan) pensionOld(in map[string]any) (float64, error) {
	years, err := p.effectiveServiceYears(in)
	if err != nil {
		return 0, err
	}
	return p.applyMNFactor(in, years*p.OldAmountPerYear)
}

func (p Plan) pensionNew(in map[string]any) (float64, error) {
	years, err := p.effectiveServiceYears(in)
	if err != nil {
		return 0, err
	}
	salary, ok := value.Float(in[fieldSalary])
	if !ok {
		return 0, fmt.Errorf("%s: invalid number: %w", fieldSalary, calc.ErrInvalidInput)
	}

	pension := math.Min(years*p.NewRatePerYear*salary, p.NewMaxRate*salary)
	return p.applyMNFactor(in, pension)
}

// effectiveServiceYears prefers a confirmed or overridden service time passed
// in under the dienstzeit key over the computed one.
func (p Plan) effectiveServiceYears(in map[string]any) (float64, error) {
	if v, ok := in[FuncServiceYears]; ok && !value.IsEmpty(v) {
		years, ok := value.Float(v)
		if !ok {
			return 0, fmt.Errorf("%s: invalid number: %w", FuncServiceYears, calc.ErrInvalidInput)
		}
		return years, nil
	}
	return p.serviceYears(in)
}

// applyMNFactor shortens amount by the m/n factor when an exit date is known.
func (p Plan) applyMNFactor(in map[string]any, amount float64) (float64, error) {
	if value.IsEmpty(in[fieldExit]) || value.IsEmpty(in[fieldBirth]) {
		return amount, nil
	}
	pct, err := p.mnFactorPercent(in)
	if err != nil {
		return 0, err
	}
	return amount * pct / 100, nil
}

func requireDates(in map[string]any, names ...string) ([]time.Time, error) {
	out := make([]time.Time, len(names))
	for i, name := range names {
		d, ok := value.Date(in[name])
		if !ok {
			return nil, fmt.Errorf("%s: invalid date: %w", name, calc.ErrInvalidInput)
		}
		out[i] = d
	}
	return out, nil
}
