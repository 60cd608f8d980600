// Package main is formctl, a command-line companion to the form service. It
// reads form declarations directly from disk, so declarations can be checked
// and records validated without a running server.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/formflow/internal/declare"
	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/domain/schema"
	"github.com/jsamuelsen11/formflow/internal/domain/validation"
	"github.com/jsamuelsen11/formflow/internal/formulas"
	"github.com/jsamuelsen11/formflow/internal/platform/logging"
)

// errRecordInvalid makes validate exit non-zero after printing the report.
var errRecordInvalid = errors.New("record failed validation")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "formctl",
		Short:        "Inspect form declarations",
		Long:         "Loads form declaration files, prints their assembled schema and validates records against them.",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	logger := func() *slog.Logger {
		return logging.New(logLevel, "text", errOut)
	}

	root.AddCommand(
		newSchemaCmd(logger),
		newValidateCmd(logger),
		newCalculateCmd(logger),
	)
	return root
}

func newSchemaCmd(logger func() *slog.Logger) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "schema <form.yaml>",
		Short: "Print the assembled schema of a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := declare.LoadFile(args[0], formulas.Library)
			if err != nil {
				return err
			}

			generated := time.Now()
			if now != "" {
				if generated, err = time.Parse(time.RFC3339, now); err != nil {
					return fmt.Errorf("parsing --now: %w", err)
				}
			}

			sc, err := schema.Assemble(f.Record, f.Calcs.All(), f.Steps.All(), validation.NewEngine(),
				schema.WithGeneratedAt(generated),
				schema.WithConfig(f.Config),
			)
			if err != nil {
				return err
			}
			logger().Debug("schema assembled",
				slog.String("form", f.Name),
				slog.Int("fields", len(sc.AllFields)),
			)
			return printJSON(cmd.OutOrStdout(), sc)
		},
	}
	cmd.Flags().StringVar(&now, "now", "", "generation timestamp (RFC 3339) instead of the current time")
	return cmd
}

func newValidateCmd(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <form.yaml> <record.json>",
		Short: "Validate a JSON record against a form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, data, err := loadFormAndRecord(args[0], args[1])
			if err != nil {
				return err
			}

			defs, err := field.ExtractFields(f.Record)
			if err != nil {
				return err
			}
			report := validation.NewEngine().ValidateRecord(defs, data)
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Valid() {
				logger().Debug("record invalid",
					slog.String("form", f.Name),
					slog.Int("failures", len(report.Failures)),
				)
				return errRecordInvalid
			}
			return nil
		},
	}
}

// calculatedValue is one line of calculate's output.
type calculatedValue struct {
	Key   string   `json:"key"`
	Value *float64 `json:"value"`
	Unit  string   `json:"unit,omitempty"`
	Error string   `json:"error,omitempty"`
}

func newCalculateCmd(logger func() *slog.Logger) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "calculate <form.yaml> <record.json>",
		Short: "Evaluate the calculated fields of a form for a JSON record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, data, err := loadFormAndRecord(args[0], args[1])
			if err != nil {
				return err
			}

			runner := calc.NewRunner(workers, calc.BreakerSettings{
				MaxFailures:   1,
				Timeout:       time.Second,
				HalfOpenLimit: 1,
			}, logger())
			defs := f.Calcs.All()
			results, err := runner.EvaluateAll(cmd.Context(), f.Name, defs, data)
			if err != nil {
				return err
			}

			out := make([]calculatedValue, 0, len(results))
			for i, r := range results {
				v := calculatedValue{Key: defs[i].Key, Unit: defs[i].Unit}
				if r.Err != nil {
					v.Error = r.Err.Error()
				} else {
					value := r.Value
					v.Value = &value
				}
				out = append(out, v)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent formula evaluations")
	return cmd
}

func loadFormAndRecord(formPath, recordPath string) (*form.Form, map[string]any, error) {
	f, err := declare.LoadFile(formPath, formulas.Library)
	if err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(recordPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading record: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, nil, fmt.Errorf("decoding record %s: %w", recordPath, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return f, data, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
