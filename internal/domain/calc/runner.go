package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/formflow/internal/domain/value"
)

// Errors returned by Runner.
var (
	// ErrMissingInputs means a required input field has no value yet.
	ErrMissingInputs = errors.New("missing inputs")

	// ErrComputeFailed wraps errors and panics raised by a ComputeFunc and
	// non-finite results.
	ErrComputeFailed = errors.New("compute failed")

	// ErrInvalidInput is wrapped by a ComputeFunc whose inputs are present
	// but unusable, such as a malformed date. Runner reports it without
	// ErrComputeFailed, and it never counts against the field's breaker.
	ErrInvalidInput = errors.New("invalid input")
)

// BreakerSettings configures the per-field circuit breaker. A compute function
// that fails MaxFailures times in a row is short-circuited for Timeout before
// HalfOpenLimit probe calls are let through.
type BreakerSettings struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

// Result is the outcome of evaluating one calculated field.
type Result struct {
	Key   string
	Value float64
	Unit  string
	Err   error
}

// Runner evaluates calculated fields. Each form and key pair gets its own
// circuit breaker so a broken formula cannot affect the others, even when two
// forms declare the same key. A Runner is safe for concurrent use.
type Runner struct {
	workers  int
	settings BreakerSettings
	logger   *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[float64]
}

// NewRunner creates a Runner that evaluates at most workers fields
// concurrently in EvaluateAll. workers < 1 means one; a nil logger discards
// breaker state changes.
func NewRunner(workers int, settings BreakerSettings, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		workers:  workers,
		settings: settings,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker[float64]),
	}
}

// Evaluate computes d of the named form from inputs and rounds the result to
// d.Precision. Returns ErrMissingInputs when any field in d.Requires is empty,
// ErrInvalidInput when the compute function rejects its inputs,
// ErrComputeFailed when it fails otherwise, and gobreaker.ErrOpenState while
// the field's breaker is open. Only ErrComputeFailed trips the breaker.
func (r *Runner) Evaluate(ctx context.Context, form string, d *Definition, inputs map[string]any) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if d.Compute == nil {
		return 0, fmt.Errorf("%s: %w: no compute function", d.Key, ErrComputeFailed)
	}
	if missing := MissingInputs(d, inputs); len(missing) > 0 {
		return 0, fmt.Errorf("%s: %w: %s", d.Key, ErrMissingInputs, strings.Join(missing, ", "))
	}

	v, err := r.breaker(form, d.Key).Execute(func() (float64, error) {
		return compute(d, inputs)
	})
	if err != nil {
		return 0, err
	}
	return Round(v, d.Precision), nil
}

// EvaluateAll evaluates every definition concurrently. Per-field failures are
// reported in the corresponding Result; the returned error is only non-nil
// when ctx is canceled. Results keep the order of defs.
func (r *Runner) EvaluateAll(ctx context.Context, form string, defs []Definition, inputs map[string]any) ([]Result, error) {
	results := make([]Result, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range defs {
		g.Go(func() error {
			d := &defs[i]
			v, err := r.Evaluate(gctx, form, d, inputs)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			results[i] = Result{Key: d.Key, Value: v, Unit: d.Unit, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MissingInputs lists the required fields of d that have no value in inputs.
func MissingInputs(d *Definition, inputs map[string]any) []string {
	var missing []string
	for _, name := range d.Requires {
		if value.IsEmpty(inputs[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Round rounds v to precision decimals, halves away from zero.
func Round(v float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}

// State reports the breaker state of key in form. Keys never evaluated are
// closed.
func (r *Runner) State(form, key string) gobreaker.State {
	r.mu.Lock()
	cb, ok := r.breakers[breakerName(form, key)]
	r.mu.Unlock()

	if !ok {
		return gobreaker.StateClosed
	}
	return cb.State()
}

// HealthCheck reports an error while any field's breaker is open. It never
// runs a compute function.
func (r *Runner) HealthCheck(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var open []string
	for key, cb := range r.breakers {
		if cb.State() == gobreaker.StateOpen {
			open = append(open, key)
		}
	}
	if len(open) > 0 {
		slices.Sort(open)
		return fmt.Errorf("formulas failing (circuit breaker open): %s", strings.Join(open, ", "))
	}
	return nil
}

// Name identifies the runner as a health dependency.
func (r *Runner) Name() string {
	return "formulas"
}

func (r *Runner) breaker(form, key string) *gobreaker.CircuitBreaker[float64] {
	name := breakerName(form, key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[name]; ok {
		return cb
	}

	maxFailures := r.settings.MaxFailures
	cb := gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(r.settings.HalfOpenLimit),
		Timeout:     r.settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidInput)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			if r.logger == nil {
				return
			}
			r.logger.Warn("formula circuit breaker state change",
				slog.String("field", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	r.breakers[name] = cb
	return cb
}

func breakerName(form, key string) string {
	if form == "" {
		return key
	}
	return form + "/" + key
}

func compute(d *Definition, inputs map[string]any) (v float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %w: panic: %v", d.Key, ErrComputeFailed, p)
		}
	}()

	v, err = d.Compute(inputs)
	if errors.Is(err, ErrInvalidInput) {
		return 0, fmt.Errorf("%s: %w", d.Key, err)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", d.Key, ErrComputeFailed, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %w: result is not finite", d.Key, ErrComputeFailed)
	}
	return v, nil
}

func toUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
