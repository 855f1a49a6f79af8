package yaml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

// Error is an error located in a YAML document, either by the token where
// decoding failed or by the path of an invalid value.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
	Color  bool
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		pos := e.Token.Position

		var pp printer.Printer

		return fmt.Sprintf("[%d:%d] %v\n%s", pos.Line, pos.Column, e.Err, pp.PrintErrorToken(e.Token, e.Color))

	case e.Path != nil && len(e.Source) > 0:
		src, err := e.Path.AnnotateSource(e.Source, e.Color)
		if err != nil {
			return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
		}

		return fmt.Sprintf("error at %s: %v\n%s", e.Path, e.Err, src)

	case e.Path != nil:
		return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
	}

	return e.Err.Error()
}

type ErrorOpt func(e *Error)

// WithSource attaches the document so paths can be annotated.
func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

// WithColor enables colored source annotations.
func WithColor(color bool) ErrorOpt {
	return func(e *Error) {
		e.Color = color
	}
}

// ErrorWrapper applies options to every [*Error] passing through it.
type ErrorWrapper struct {
	opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{opts: opts}
}

// Wrap applies the options to err if it is an [*Error], and returns err.
func (ew *ErrorWrapper) Wrap(err error) error {
	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range ew.opts {
			opt(yamlErr)
		}
	}

	return err
}

// PathFromLocation builds a path from JSON pointer segments, treating
// numeric segments as sequence indexes.
func PathFromLocation(location []string) *yaml.Path {
	pb := (&yaml.PathBuilder{}).Root()

	for _, part := range location {
		if i, err := strconv.ParseUint(part, 10, 64); err == nil {
			pb = pb.Index(uint(i))

			continue
		}

		pb = pb.Child(part)
	}

	return pb.Build()
}
