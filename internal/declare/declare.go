// Package declare loads form declarations from YAML files.
//
// A declaration describes one form: the record type with per-attribute UI
// metadata, the calculated fields bound to compute functions by name, the
// workflow steps with their named show conditions, and free-form
// configuration values. Loading fails fast: an unknown compute function,
// condition or attribute type rejects the whole file.
//
//	form: pension
//	record:
//	  name: MitarbeiterFormular
//	  attributes:
//	    - name: geburtsdatum
//	      type: date
//	      required: true
//	      validation: [required, date_in_past]
//	calculations:
//	  - key: dienstzeit
//	    function: dienstzeit
//	    requires: [eintrittsdatum, geburtsdatum]
//	steps:
//	  - order: 2
//	    title: Unverfallbarkeit
//	    show_if: has_value:austrittsdatum
package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/formflow/internal/domain"
	"github.com/jsamuelsen11/formflow/internal/domain/calc"
	"github.com/jsamuelsen11/formflow/internal/domain/field"
	"github.com/jsamuelsen11/formflow/internal/domain/form"
)

// Library resolves the compute functions available to a form, given the
// form's configuration values.
type Library func(config map[string]any) (map[string]calc.ComputeFunc, error)

// LoadFile reads and decodes the declaration at path.
func LoadFile(path string, lib Library) (*form.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declaration %s: %w", path, err)
	}

	f, err := Decode(bytes.NewReader(data), lib)
	if err != nil {
		return nil, fmt.Errorf("loading declaration %s: %w", path, err)
	}
	return f, nil
}

// Decode reads one declaration from r. Unknown YAML keys are rejected.
func Decode(r io.Reader, lib Library) (*form.Form, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty declaration", domain.ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}

	return build(&doc, lib)
}

func build(doc *document, lib Library) (*form.Form, error) {
	name := strings.TrimSpace(doc.Form)
	if name == "" {
		return nil, domain.NewDefinitionError(map[string]string{"form": domain.MsgRequired})
	}

	rt := doc.Record.recordType()
	if _, err := field.ExtractFields(rt); err != nil {
		return nil, err
	}

	config := doc.Config
	if config == nil {
		config = map[string]any{}
	}

	f := form.New(name, rt)
	f.Config = config
	f.SubjectFields = doc.SubjectKey

	if len(doc.Calculations) > 0 {
		if lib == nil {
			return nil, fmt.Errorf("%w: calculations declared but no function library", domain.ErrInvalidDefinition)
		}
		funcs, err := lib(config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
		}
		for i := range doc.Calculations {
			d, err := doc.Calculations[i].definition(funcs)
			if err != nil {
				return nil, err
			}
			if err := f.Calcs.Register(d); err != nil {
				return nil, err
			}
		}
	}

	for i := range doc.Steps {
		s, err := doc.Steps[i].step()
		if err != nil {
			return nil, err
		}
		if err := f.Steps.Register(s); err != nil {
			return nil, err
		}
	}

	if err := checkSubjectFields(rt, f.SubjectFields); err != nil {
		return nil, err
	}

	return f, nil
}

func checkSubjectFields(rt field.RecordType, names []string) error {
	known := make(map[string]bool, len(rt.Attributes))
	for _, a := range rt.Attributes {
		known[a.Name] = true
	}
	for _, n := range names {
		if !known[n] {
			return domain.NewDefinitionError(map[string]string{
				"subject_key": fmt.Sprintf("unknown attribute %q", n),
			})
		}
	}
	return nil
}
