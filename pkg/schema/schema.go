// Package schema reflects JSON schemas from Go types and validates decoded
// documents against them.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/macropower/pagebar/pkg/yaml"
)

var ErrSchemaValidation = errors.New("schema validation")

var printer = message.NewPrinter(language.English)

// Generator reflects a JSON schema from a value's type.
type Generator struct {
	v  any
	id string
}

// NewGenerator creates a [Generator] for v. The schema gets id as its $id.
func NewGenerator(v any, id string) *Generator {
	return &Generator{v: v, id: id}
}

// Generate returns the indented schema JSON.
func (g *Generator) Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(g.v)
	s.ID = jsonschema.ID(g.id)

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

// Validator validates data against a JSON schema.
type Validator struct {
	schema *santhosh.Schema
}

// NewValidator compiles schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	doc, err := santhosh.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	c := santhosh.NewCompiler()

	err = c.AddResource(url, doc)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: s}, nil
}

// Validate checks data decoded from YAML or JSON. Violations are returned as
// a [*yaml.Error] whose path points at the most specific failing value.
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var ve *santhosh.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrSchemaValidation, err)
	}

	leaf := deepest(ve)

	return &yaml.Error{
		Err:  fmt.Errorf("%w: %s", ErrSchemaValidation, leaf.ErrorKind.LocalizedString(printer)),
		Path: yaml.PathFromLocation(leaf.InstanceLocation),
	}
}

// deepest returns the cause with the longest instance location.
func deepest(ve *santhosh.ValidationError) *santhosh.ValidationError {
	best := ve

	for _, c := range ve.Causes {
		if d := deepest(c); len(d.InstanceLocation) > len(best.InstanceLocation) {
			best = d
		}
	}

	return best
}
