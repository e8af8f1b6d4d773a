package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML decodes YAML configuration. Unknown keys are errors.
type YAML struct{}

// Format returns "yaml".
func (YAML) Format() string { return "yaml" }

// Decode decodes YAML data into v. An empty document leaves v unchanged.
func (YAML) Decode(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			pe.Message = typeErr.Errors[0]
		}
		return pe
	}
	return nil
}
