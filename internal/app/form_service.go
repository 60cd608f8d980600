// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/domain/quorum"
	"github.com/jsamuelsen11/formflow/internal/domain/schema"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/domain/workflow"
	"github.com/jsamuelsen11/formflow/internal/platform/telemetry"
	"github.com/jsamuelsen11/formflow/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

const tracerName = "app"

// Formula evaluation results recorded on the FormulaEvaluations counter.
const (
	resultOK            = "ok"
	resultMissingInputs = "missing_inputs"
	resultInvalidInput  = "invalid_input"
	resultError         = "error"
)

// FormService implements ports.FormService on top of the form catalog. It
// assembles schemas, validates records, evaluates calculated fields and keeps
// one confirmation tracker per form. Trackers live in memory for the life of
// the process.
type FormService struct {
	catalog ports.FormCatalog
	engine  *validation.Engine
	runner  *calc.Runner
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	trackers map[string]*formTracker
}

// formTracker pairs a form's tracker with the calculated fields it reads
// policies from. A catalog reload replaces the form; the counts survive and
// the policies follow the newly loaded fields.
type formTracker struct {
	*quorum.Tracker

	mu    sync.RWMutex
	calcs *calc.Registry
}

// Policy implements quorum.PolicySource.
func (t *formTracker) Policy(key string) (threshold int, needsConfirmation, ok bool) {
	t.mu.RLock()
	calcs := t.calcs
	t.mu.RUnlock()
	return calcs.Policy(key)
}

func (t *formTracker) use(calcs *calc.Registry) {
	t.mu.Lock()
	t.calcs = calcs
	t.mu.Unlock()
}

// Option configures a FormService.
type Option func(*FormService)

// WithMetrics records domain metrics on m. Without it no metrics are
// recorded.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *FormService) { s.metrics = m }
}

// WithClock sets the clock used for schema timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *FormService) { s.now = now }
}

// NewFormService creates a FormService. A nil logger discards output.
func NewFormService(
	catalog ports.FormCatalog,
	engine *validation.Engine,
	runner *calc.Runner,
	logger *slog.Logger,
	opts ...Option,
) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FormService{
		catalog:  catalog,
		engine:   engine,
		runner:   runner,
		logger:   logger,
		now:      time.Now,
		trackers: map[string]*formTracker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListForms returns a summary of every loaded form.
func (s *FormService) ListForms(ctx context.Context) ([]form.Summary, error) {
	s.logger.InfoContext(ctx, "listing forms")

	forms, err := s.catalog.ListForms(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list forms",
			slog.String("operation", "ListForms"),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]form.Summary, 0, len(forms))
	for _, f := range forms {
		out = append(out, f.Summary())
	}
	return out, nil
}

// Schema assembles the complete schema of a form, stamped with the current
// time and carrying the form's configuration.
func (s *FormService) Schema(ctx context.Context, name string) (*schema.Schema, error) {
	s.logger.InfoContext(ctx, "assembling schema", slog.String("form", name))

	f, err := s.form(ctx, "Schema", name)
	if err != nil {
		return nil, err
	}

	sc, err := schema.Assemble(f.Record, f.Calcs.All(), f.Steps.All(), s.engine,
		schema.WithGeneratedAt(s.now()),
		schema.WithConfig(f.Config),
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to assemble schema",
			slog.String("operation", "Schema"),
			slog.String("form", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SchemaAssemblies.Add(ctx, 1, metric.WithAttributes(telemetry.AttrForm.String(name)))
	}
	return sc, nil
}

// Validate runs the validation rules of every input field against data.
func (s *FormService) Validate(ctx context.Context, name string, data map[string]any) (*validation.Report, error) {
	s.logger.InfoContext(ctx, "validating record", slog.String("form", name))

	f, err := s.form(ctx, "Validate", name)
	if err != nil {
		return nil, err
	}

	defs, err := field.ExtractFields(f.Record)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to extract fields",
			slog.String("operation", "Validate"),
			slog.String("form", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	report := s.engine.ValidateRecord(defs, data)
	if n := len(report.Failures); n > 0 {
		s.logger.DebugContext(ctx, "record failed validation",
			slog.String("form", name),
			slog.Int("failures", n),
		)
		if s.metrics != nil {
			s.metrics.ValidationFailures.Add(ctx, int64(n), metric.WithAttributes(telemetry.AttrForm.String(name)))
		}
	}
	return &report, nil
}

// VisibleSteps returns the workflow steps whose show condition holds for data.
func (s *FormService) VisibleSteps(ctx context.Context, name string, data map[string]any) ([]workflow.Step, error) {
	f, err := s.form(ctx, "VisibleSteps", name)
	if err != nil {
		return nil, err
	}
	return workflow.Visible(f.Steps.All(), data), nil
}

// Calculate evaluates every calculated field of a form for data. A field
// that cannot be evaluated is reported in its CalculatedValue; only a
// canceled context fails the whole call.
func (s *FormService) Calculate(ctx context.Context, name string, data map[string]any) (*ports.Calculation, error) {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "FormService.Calculate",
		trace.WithAttributes(telemetry.AttrForm.String(name)),
	)
	defer span.End()

	f, err := s.form(ctx, "Calculate", name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	defs := f.Calcs.All()
	start := time.Now()
	results, err := s.runner.EvaluateAll(ctx, name, defs, data)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "failed to evaluate calculated fields",
			slog.String("operation", "Calculate"),
			slog.String("form", name),
			slog.Any("error", err),
		)
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.FormulaDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(telemetry.AttrForm.String(name)))
	}

	tracker := s.tracker(f)
	subject := f.SubjectID(data)

	calcn := &ports.Calculation{
		Subject: subject,
		Values:  make([]ports.CalculatedValue, 0, len(results)),
	}
	for i, r := range results {
		d := &defs[i]
		v := ports.CalculatedValue{
			Key:           d.Key,
			Label:         d.Label,
			Unit:          d.Unit,
			Quorum:        tracker.Status(d.Key),
			CanContribute: tracker.CanContribute(subject, d.Key),
		}

		result := resultOK
		switch {
		case r.Err == nil:
			value := r.Value
			v.Value = &value
		case errors.Is(r.Err, calc.ErrMissingInputs):
			result = resultMissingInputs
			v.Missing = calc.MissingInputs(d, data)
		case errors.Is(r.Err, calc.ErrInvalidInput):
			result = resultInvalidInput
			v.Error = r.Err.Error()
		default:
			result = resultError
			v.Error = r.Err.Error()
			s.logger.WarnContext(ctx, "calculated field failed",
				slog.String("operation", "Calculate"),
				slog.String("form", name),
				slog.String("field", d.Key),
				slog.Any("error", r.Err),
			)
		}
		s.recordEvaluation(ctx, name, d.Key, result)

		calcn.Values = append(calcn.Values, v)
	}
	return calcn, nil
}

// QuorumStatus returns the confirmation progress of a calculated field.
func (s *FormService) QuorumStatus(ctx context.Context, name, key, subject string) (*ports.QuorumView, error) {
	f, err := s.form(ctx, "QuorumStatus", name)
	if err != nil {
		return nil, err
	}
	if err := requireCalc(f, key); err != nil {
		return nil, err
	}

	tracker := s.tracker(f)
	return &ports.QuorumView{
		Key:           key,
		Status:        tracker.Status(key),
		Subject:       subject,
		CanContribute: tracker.CanContribute(subject, key),
	}, nil
}

// Confirm records a subject's confirmation of a calculated field. The
// subject is req.Subject when set, otherwise the natural key of req.Data.
func (s *FormService) Confirm(ctx context.Context, name, key string, req ports.ConfirmRequest) (*quorum.Outcome, error) {
	f, err := s.form(ctx, "Confirm", name)
	if err != nil {
		return nil, err
	}
	if err := requireCalc(f, key); err != nil {
		return nil, err
	}

	subject := req.Subject
	if subject == "" {
		subject = f.SubjectID(req.Data)
	}

	out := s.tracker(f).Confirm(subject, key)

	s.logger.InfoContext(ctx, "confirmation recorded",
		slog.String("form", name),
		slog.String("field", key),
		slog.String("subject", subject),
		slog.String("reason", string(out.Reason)),
		slog.Int("count", out.Status.Count),
		slog.Bool("verified", out.Status.Verified),
	)
	if s.metrics != nil {
		s.metrics.Confirmations.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrForm.String(name),
			telemetry.AttrField.String(key),
			telemetry.AttrReason.String(string(out.Reason)),
		))
	}
	return &out, nil
}

// form fetches a form from the catalog, logging failures under operation.
func (s *FormService) form(ctx context.Context, operation, name string) (*form.Form, error) {
	f, err := s.catalog.GetForm(ctx, name)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "failed to fetch form",
			slog.String("operation", operation),
			slog.String("form", name),
			slog.Any("error", err),
		)
		return nil, err
	}
	return f, nil
}

// tracker returns the confirmation tracker of f, creating it on first use.
func (s *FormService) tracker(f *form.Form) *quorum.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trackers[f.Name]
	if !ok {
		t = &formTracker{calcs: f.Calcs}
		t.Tracker = quorum.NewTracker(t)
		s.trackers[f.Name] = t
	} else {
		t.use(f.Calcs)
	}
	return t.Tracker
}

func (s *FormService) recordEvaluation(ctx context.Context, name, key, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.FormulaEvaluations.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrForm.String(name),
		telemetry.AttrField.String(key),
		telemetry.AttrResult.String(result),
	))
}

func requireCalc(f *form.Form, key string) error {
	if _, ok := f.Calcs.Get(key); !ok {
		return fmt.Errorf("calculated field %q of form %q: %w", key, f.Name, domain.ErrNotFound)
	}
	return nil
}
