package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/macropower/pagebar/pkg/yaml"
)

var ErrInvalidPath = errors.New("invalid config path")

// Validator validates decoded configuration data.
type Validator interface {
	Validate(data any) error
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator replaces the schema validator.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithColor colors source annotations in errors.
func WithColor(color bool) LoaderOpt {
	return func(l *Loader) {
		l.color = color
	}
}

// Loader validates and decodes one configuration document.
type Loader struct {
	validator Validator
	yamlError *yaml.ErrorWrapper
	data      []byte
	color     bool
}

// NewLoaderFromBytes creates a [Loader] for data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) (*Loader, error) {
	l := &Loader{data: data}
	for _, opt := range opts {
		opt(l)
	}

	if l.validator == nil {
		v, err := DefaultValidator()
		if err != nil {
			return nil, err
		}

		l.validator = v
	}

	l.yamlError = yaml.NewErrorWrapper(
		yaml.WithSource(data),
		yaml.WithColor(l.color),
	)

	return l, nil
}

// NewLoaderFromFile creates a [Loader] for the file at path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return NewLoaderFromBytes(data, opts...)
}

// Validate checks the document against the schema without decoding it into
// a [Config].
func (l *Loader) Validate() error {
	var doc any

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&doc)
	if err != nil {
		return l.yamlError.Wrap(err)
	}

	err = l.validator.Validate(doc)
	if err != nil {
		return l.yamlError.Wrap(err)
	}

	return nil
}

// Load validates and decodes the document, filling in defaults.
func (l *Loader) Load() (*Config, error) {
	err := l.Validate()
	if err != nil {
		return nil, err
	}

	c := &Config{}

	err = yaml.NewDecoder(bytes.NewReader(l.data)).Decode(c)
	if err != nil {
		return nil, l.yamlError.Wrap(err)
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidPath, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Path is user supplied.
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return data, nil
}
