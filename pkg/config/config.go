package config

import (
	"bytes"
	"fmt"
	"sync"

	_ "embed"

	"github.com/invopop/jsonschema"

	"github.com/macropower/pagebar/pkg/schema"
	"github.com/macropower/pagebar/pkg/ui"
	"github.com/macropower/pagebar/pkg/yaml"
)

const (
	APIVersion = "pagebar.macropower.dev/v1"
	Kind       = "Configuration"

	// SchemaFile is written next to the config file.
	SchemaFile = "config.v1.json"
	SchemaID   = "https://raw.githubusercontent.com/macropower/pagebar/refs/heads/main/pkg/config/" + SchemaFile
)

//go:embed config.yaml
var defaultConfigYAML []byte

var (
	schemaOnce sync.Once
	schemaJSON []byte
	validator  *schema.Validator
	schemaErr  error
)

// Schema returns the JSON schema of [Config].
func Schema() ([]byte, error) {
	loadSchema()

	return schemaJSON, schemaErr
}

// DefaultValidator returns the validator for [Schema].
func DefaultValidator() (*schema.Validator, error) {
	loadSchema()

	return validator, schemaErr
}

func loadSchema() {
	schemaOnce.Do(func() {
		schemaJSON, schemaErr = schema.NewGenerator(&Config{}, SchemaID).Generate()
		if schemaErr != nil {
			schemaErr = fmt.Errorf("generate schema: %w", schemaErr)

			return
		}

		validator, schemaErr = schema.NewValidator(SchemaID, schemaJSON)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("load schema: %w", schemaErr)
		}
	})
}

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// UI configures the terminal interface.
	UI *ui.Config `json:"ui,omitempty" jsonschema:"title=UI"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version,required"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind,required"`
}

func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.UI == nil {
		c.UI = ui.NewConfig()
	} else {
		c.UI.EnsureDefaults()
	}
}

// Validate runs the checks the schema cannot express.
func (c *Config) Validate() error {
	return c.UI.Validate() //nolint:wrapcheck // Already wrapped.
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	for name, value := range map[string]string{"apiVersion": APIVersion, "kind": Kind} {
		prop, ok := jss.Properties.Get(name)
		if !ok {
			panic(name + " property not found in schema")
		}

		prop.Const = value
		_, _ = jss.Properties.Set(name, prop)
	}
}

// MarshalYAML encodes the configuration, defaults included.
func (c *Config) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(*c) //nolint:wrapcheck // Already wrapped.
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultConfigYAML)
}
