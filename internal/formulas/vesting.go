package formulas

import (
	"fmt"
	"time"
)

// FuncVesting is the compute function name of the vesting check. It yields 1
// when the entitlement is vested at exit and 0 otherwise.
const FuncVesting = "unverfallbarkeit"

// Vesting regimes of BetrAVG §1b, selected by the year of exit.
const (
	RegimeFrom2018 = "ab 2018"
	Regime2009     = "2009 bis 2017"
	RegimeBefore   = "vor 2009"
)

// Vesting is the outcome of a vesting check.
type Vesting struct {
	Vested       bool   `json:"vested"`
	Regime       string `json:"regime"`
	ServiceYears int    `json:"service_years"`
	AgeAtExit    int    `json:"age_at_exit"`
	Reason       string `json:"reason"`
}

// CheckVesting applies the vesting rules in force in the year of exit:
//
//   - from 2018: 3 years of service and age 21
//   - 2009 to 2017: 5 years of service and age 25
//   - before 2009: 10 years of service, or 5 years and age 30
//
// Service years and age are completed years at the exit date.
func CheckVesting(birth, entry, exit time.Time) Vesting {
	v := Vesting{
		ServiceYears: completedYears(entry, exit),
		AgeAtExit:    completedYears(birth, exit),
	}

	switch year := exit.Year(); {
	case year >= 2018:
		v.Regime = RegimeFrom2018
		v.Vested = v.ServiceYears >= 3 && v.AgeAtExit >= 21
		v.Reason = v.describe("mind. 3 Jahre Dienstzeit und 21 Jahre alt")
	case year >= 2009:
		v.Regime = Regime2009
		v.Vested = v.ServiceYears >= 5 && v.AgeAtExit >= 25
		v.Reason = v.describe("mind. 5 Jahre Dienstzeit und 25 Jahre alt")
	default:
		v.Regime = RegimeBefore
		v.Vested = v.ServiceYears >= 10 || (v.ServiceYears >= 5 && v.AgeAtExit >= 30)
		v.Reason = v.describe("10 Jahre Dienstzeit oder 5 Jahre Dienstzeit und 30 Jahre alt")
	}
	return v
}

func (v Vesting) describe(rule string) string {
	verdict := "Nicht erfüllt"
	if v.Vested {
		verdict = "Erfüllt"
	}
	return fmt.Sprintf("%s: %d Jahre Dienstzeit, %d Jahre alt (Regelung %s: %s)",
		verdict, v.ServiceYears, v.AgeAtExit, v.Regime, rule)
}

func (p Plan) vesting(in map[string]any) (float64, error) {
	d, err := requireDates(in, fieldBirth, fieldEntry, fieldExit)
	if err != nil {
		return 0, err
	}
	if CheckVesting(d[0], d[1], d[2]).Vested {
		return 1, nil
	}
	return 0, nil
}

// completedYears counts the full years from from to to. Never negative.
func completedYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return max(0, years)
}
