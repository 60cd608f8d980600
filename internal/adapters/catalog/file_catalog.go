// Package catalog is the outbound adapter that serves form declarations
// loaded from YAML files on disk.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jsamuelsen11/formflow/internal/declare"
	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/form"
	"github.com/jsamuelsen11/formflow/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FormCatalog   = (*FileCatalog)(nil)
	_ ports.HealthChecker = (*FileCatalog)(nil)
)

// errEmptyCatalog is reported by HealthCheck until at least one form loads.
var errEmptyCatalog = errors.New("form-catalog: no forms loaded")

// FileCatalog implements [ports.FormCatalog] over declaration files matched
// by glob patterns. Forms are immutable once loaded; Reload swaps the whole
// set atomically so readers never see a partially loaded catalog.
type FileCatalog struct {
	patterns []string
	lib      declare.Library
	logger   *slog.Logger

	mu    sync.RWMutex
	forms map[string]*form.Form
	names []string
}

// NewFileCatalog creates an empty catalog. Call Reload to read the files.
// A nil logger discards output.
func NewFileCatalog(patterns []string, lib declare.Library, logger *slog.Logger) *FileCatalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileCatalog{
		patterns: patterns,
		lib:      lib,
		logger:   logger,
		forms:    map[string]*form.Form{},
	}
}

// Reload reads every declaration matched by the catalog's patterns. On any
// error the previously loaded forms stay in place. Two files declaring the
// same form name are rejected.
func (c *FileCatalog) Reload(ctx context.Context) error {
	paths, err := c.expand()
	if err != nil {
		return err
	}

	forms := make(map[string]*form.Form, len(paths))
	sources := make(map[string]string, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := declare.LoadFile(path, c.lib)
		if err != nil {
			return err
		}
		if prev, dup := sources[f.Name]; dup {
			return fmt.Errorf("form %q declared in %s and %s: %w",
				f.Name, prev, path, domain.ErrInvalidDefinition)
		}
		forms[f.Name] = f
		sources[f.Name] = path

		c.logger.InfoContext(ctx, "form loaded",
			slog.String("form", f.Name),
			slog.String("file", path),
			slog.Int("fields", len(f.Record.Attributes)),
			slog.Int("calculations", f.Calcs.Len()),
			slog.Int("steps", f.Steps.Len()),
		)
	}

	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)

	c.mu.Lock()
	c.forms = forms
	c.names = names
	c.mu.Unlock()
	return nil
}

// expand resolves the glob patterns into a sorted, de-duplicated file list.
func (c *FileCatalog) expand() ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	for _, pattern := range c.patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ListForms returns every loaded form, sorted by name.
func (c *FileCatalog) ListForms(_ context.Context) ([]*form.Form, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*form.Form, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.forms[name])
	}
	return out, nil
}

// GetForm returns the named form or [domain.ErrNotFound].
func (c *FileCatalog) GetForm(_ context.Context, name string) (*form.Form, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.forms[name]
	if !ok {
		return nil, fmt.Errorf("form %q: %w", name, domain.ErrNotFound)
	}
	return f, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *FileCatalog) Name() string {
	return "form-catalog"
}

// HealthCheck fails while the catalog holds no forms. No file is read.
func (c *FileCatalog) HealthCheck(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.forms) == 0 {
		return errEmptyCatalog
	}
	return nil
}
