// Package quorum tracks how many distinct subjects have confirmed the value
// of a calculated field.
//
// A calculated field starts unverified. Each subject may contribute at most
// one confirmation per field; once the number of contributions reaches the
// field's threshold the field is verified for good. Nothing in this package
// returns an error: calls outside the state machine are absorbed as no-ops
// and reported through Outcome.
package quorum

import (
	"sync"
)

// PolicySource supplies the confirmation policy of a calculated field.
// *calc.Registry implements it.
type PolicySource interface {
	Policy(key string) (threshold int, needsConfirmation, ok bool)
}

// Reason explains why a confirmation did or did not count.
type Reason string

// Confirmation reasons.
const (
	ReasonCounted            Reason = "counted"
	ReasonUnknownField       Reason = "unknown_field"
	ReasonNotRequired        Reason = "not_required"
	ReasonAlreadyVerified    Reason = "already_verified"
	ReasonAlreadyContributed Reason = "already_contributed"
	ReasonEmptySubject       Reason = "empty_subject"
)

// Status is the progress of one calculated field.
type Status struct {
	Count     int  `json:"count"`
	Threshold int  `json:"threshold"`
	Verified  bool `json:"verified"`
	// Required is false for unknown fields and fields that need no
	// confirmation.
	Required bool `json:"required"`
}

// Outcome reports the effect of a Confirm call.
type Outcome struct {
	Counted bool   `json:"counted"`
	Reason  Reason `json:"reason"`
	Status  Status `json:"status"`
}

type contribution struct {
	subject string
	key     string
}

// Tracker holds confirmation counts per field key and the one-shot
// contribution flag per (subject, key). A Tracker is safe for concurrent use.
type Tracker struct {
	policies PolicySource

	mu          sync.Mutex
	counts      map[string]int
	verified    map[string]bool
	contributed map[contribution]bool
}

// NewTracker creates a Tracker reading thresholds from policies.
func NewTracker(policies PolicySource) *Tracker {
	t := &Tracker{policies: policies}
	t.reset()
	return t
}

// Confirm records that subject confirmed the value of key. It counts only when
// key needs confirmation, is not yet verified and subject has not contributed
// to key before; then the count grows by exactly one.
func (t *Tracker) Confirm(subject, key string) Outcome {
	threshold, needs, ok := t.policies.Policy(key)

	t.mu.Lock()
	defer t.mu.Unlock()

	reject := func(r Reason) Outcome {
		return Outcome{Reason: r, Status: t.statusLocked(key, threshold, needs, ok)}
	}

	switch {
	case !ok:
		return reject(ReasonUnknownField)
	case !needs:
		return reject(ReasonNotRequired)
	case t.isVerifiedLocked(key, threshold):
		return reject(ReasonAlreadyVerified)
	case subject == "":
		return reject(ReasonEmptySubject)
	case t.contributed[contribution{subject, key}]:
		return reject(ReasonAlreadyContributed)
	}

	t.contributed[contribution{subject, key}] = true
	t.counts[key]++
	return Outcome{
		Counted: true,
		Reason:  ReasonCounted,
		Status:  t.statusLocked(key, threshold, needs, ok),
	}
}

// Status returns the progress of key. Unknown keys report a zero Status.
func (t *Tracker) Status(key string) Status {
	threshold, needs, ok := t.policies.Policy(key)

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked(key, threshold, needs, ok)
}

// CanContribute reports whether a Confirm by subject on key would count.
func (t *Tracker) CanContribute(subject, key string) bool {
	threshold, needs, ok := t.policies.Policy(key)
	if !ok || !needs || subject == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.isVerifiedLocked(key, threshold) && !t.contributed[contribution{subject, key}]
}

// Reset forgets every count and contribution.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Tracker) reset() {
	t.counts = make(map[string]int)
	t.verified = make(map[string]bool)
	t.contributed = make(map[contribution]bool)
}

// isVerifiedLocked latches the verified state the first time the count
// reaches threshold, so raising the threshold later cannot revert it.
func (t *Tracker) isVerifiedLocked(key string, threshold int) bool {
	if t.verified[key] {
		return true
	}
	if t.counts[key] >= threshold {
		t.verified[key] = true
		return true
	}
	return false
}

func (t *Tracker) statusLocked(key string, threshold int, needs, ok bool) Status {
	if !ok {
		return Status{}
	}
	return Status{
		Count:     t.counts[key],
		Threshold: threshold,
		Verified:  t.isVerifiedLocked(key, threshold),
		Required:  needs,
	}
}
