package quorum

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type policy struct {
	threshold int
	needs     bool
}

// staticPolicies is a PolicySource whose entries tests may change between
// calls to simulate re-registration.
type staticPolicies struct {
	mu sync.Mutex
	m  map[string]policy
}

func newPolicies(m map[string]policy) *staticPolicies {
	return &staticPolicies{m: m}
}

func (s *staticPolicies) Policy(key string) (int, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[key]
	return p.threshold, p.needs, ok
}

func (s *staticPolicies) set(key string, p policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = p
}

func TestTracker_ThreeSubjectQuorum(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{"grundrente_neu": {threshold: 3, needs: true}}))

	for i, subject := range []string{"s1", "s2", "s3"} {
		out := tr.Confirm(subject, "grundrente_neu")
		if !out.Counted || out.Reason != ReasonCounted {
			t.Fatalf("Confirm(%s) = %+v, want counted", subject, out)
		}
		if out.Status.Count != i+1 {
			t.Errorf("Count after %s = %d, want %d", subject, out.Status.Count, i+1)
		}
		wantVerified := i == 2
		if out.Status.Verified != wantVerified {
			t.Errorf("Verified after %s = %v, want %v", subject, out.Status.Verified, wantVerified)
		}
	}

	out := tr.Confirm("s4", "grundrente_neu")
	if out.Counted || out.Reason != ReasonAlreadyVerified {
		t.Errorf("Confirm(s4) = %+v, want no-op already_verified", out)
	}
	if got := tr.Status("grundrente_neu"); got != (Status{Count: 3, Threshold: 3, Verified: true, Required: true}) {
		t.Errorf("Status() = %+v", got)
	}
	if tr.CanContribute("s4", "grundrente_neu") {
		t.Error("CanContribute(s4) = true after verification")
	}
}

func TestTracker_SameSubjectCountsOnce(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{"x": {threshold: 3, needs: true}}))

	if !tr.CanContribute("s1", "x") {
		t.Fatal("CanContribute(s1) = false before contributing")
	}
	first := tr.Confirm("s1", "x")
	second := tr.Confirm("s1", "x")

	if !first.Counted {
		t.Errorf("first Confirm = %+v, want counted", first)
	}
	if second.Counted || second.Reason != ReasonAlreadyContributed {
		t.Errorf("second Confirm = %+v, want already_contributed", second)
	}
	if got := tr.Status("x").Count; got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if tr.CanContribute("s1", "x") {
		t.Error("CanContribute(s1) = true after contributing")
	}
	if !tr.CanContribute("s2", "x") {
		t.Error("CanContribute(s2) = false, want true")
	}
}

func TestTracker_ContributionsArePerField(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{
		"a": {threshold: 2, needs: true},
		"b": {threshold: 2, needs: true},
	}))

	if out := tr.Confirm("s1", "a"); !out.Counted {
		t.Fatalf("Confirm(s1, a) = %+v", out)
	}
	if out := tr.Confirm("s1", "b"); !out.Counted {
		t.Errorf("Confirm(s1, b) = %+v, want counted", out)
	}
}

func TestTracker_NoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subject string
		key     string
		want    Reason
		status  Status
	}{
		{name: "unknown field", subject: "s1", key: "missing", want: ReasonUnknownField, status: Status{}},
		{name: "confirmation not required", subject: "s1", key: "trusted", want: ReasonNotRequired, status: Status{Threshold: 3}},
		{name: "zero threshold is verified", subject: "s1", key: "free", want: ReasonAlreadyVerified, status: Status{Verified: true, Required: true}},
		{name: "empty subject", subject: "", key: "x", want: ReasonEmptySubject, status: Status{Threshold: 3, Required: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := NewTracker(newPolicies(map[string]policy{
				"x":       {threshold: 3, needs: true},
				"trusted": {threshold: 3, needs: false},
				"free":    {threshold: 0, needs: true},
			}))

			out := tr.Confirm(tt.subject, tt.key)
			if out.Counted || out.Reason != tt.want {
				t.Errorf("Confirm() = %+v, want no-op %s", out, tt.want)
			}
			if out.Status != tt.status {
				t.Errorf("Status = %+v, want %+v", out.Status, tt.status)
			}
			if tr.CanContribute(tt.subject, tt.key) {
				t.Error("CanContribute() = true, want false")
			}
		})
	}
}

func TestTracker_VerifiedLatches(t *testing.T) {
	t.Parallel()
	policies := newPolicies(map[string]policy{"x": {threshold: 1, needs: true}})
	tr := NewTracker(policies)

	if out := tr.Confirm("s1", "x"); !out.Status.Verified {
		t.Fatalf("Confirm(s1) = %+v, want verified", out)
	}

	policies.set("x", policy{threshold: 5, needs: true})

	st := tr.Status("x")
	if !st.Verified || st.Count != 1 || st.Threshold != 5 {
		t.Errorf("Status() = %+v, want verified with count 1 of 5", st)
	}
	if out := tr.Confirm("s2", "x"); out.Reason != ReasonAlreadyVerified {
		t.Errorf("Confirm(s2) = %+v, want already_verified", out)
	}
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{"x": {threshold: 1, needs: true}}))

	tr.Confirm("s1", "x")
	tr.Reset()

	if st := tr.Status("x"); st.Count != 0 || st.Verified {
		t.Errorf("Status() after Reset = %+v", st)
	}
	if !tr.CanContribute("s1", "x") {
		t.Error("CanContribute(s1) after Reset = false")
	}
}

func TestTracker_ConcurrentConfirmCountsEachSubjectOnce(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{"x": {threshold: 100, needs: true}}))

	var wg sync.WaitGroup
	for i := range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Confirm(fmt.Sprintf("s%d", i%20), "x")
		}()
	}
	wg.Wait()

	if got := tr.Status("x").Count; got != 20 {
		t.Errorf("Count = %d, want 20", got)
	}
}

func TestTracker_ConcurrentConfirmStopsAtThreshold(t *testing.T) {
	t.Parallel()
	tr := NewTracker(newPolicies(map[string]policy{"x": {threshold: 3, needs: true}}))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Confirm(fmt.Sprintf("s%d", i), "x")
		}()
	}
	wg.Wait()

	if st := tr.Status("x"); st.Count != 3 || !st.Verified {
		t.Errorf("Status() = %+v, want count 3 verified", st)
	}
}

func TestNaturalKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "date strings",
			data: map[string]any{"geburtsdatum": "1965-04-12", "eintrittsdatum": "1990-01-01"},
			want: "1965-04-12_1990-01-01",
		},
		{
			name: "time values",
			data: map[string]any{
				"geburtsdatum":   time.Date(1965, 4, 12, 0, 0, 0, 0, time.UTC),
				"eintrittsdatum": "1990-01-01T00:00:00Z",
			},
			want: "1965-04-12_1990-01-01",
		},
		{
			name: "partial",
			data: map[string]any{"eintrittsdatum": "1990-01-01"},
			want: "_1990-01-01",
		},
		{
			name: "nothing",
			data: map[string]any{},
			want: "",
		},
		{
			name: "non-date values",
			data: map[string]any{"geburtsdatum": "MA-17", "eintrittsdatum": 42},
			want: "MA-17_42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NaturalKey(tt.data, "geburtsdatum", "eintrittsdatum"); got != tt.want {
				t.Errorf("NaturalKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
