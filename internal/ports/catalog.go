package ports

import (
	"context"

	"github.com/jsamuelsen11/formflow/internal/domain/form"
)

// FormCatalog defines the client port for the declared forms.
// Implemented by the catalog adapter; called by the application layer.
type FormCatalog interface {
	// ListForms returns every loaded form, sorted by name.
	ListForms(ctx context.Context) ([]*form.Form, error)

	// GetForm returns the form with the given name.
	// Returns domain.ErrNotFound if no such form is loaded.
	GetForm(ctx context.Context, name string) (*form.Form, error)
}
