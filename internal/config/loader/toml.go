package loader

import (
	"bytes"
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOML decodes TOML configuration. Unknown keys are errors.
type TOML struct{}

// Format returns "toml".
func (TOML) Format() string { return "toml" }

// Decode decodes TOML data into v.
func (TOML) Decode(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			pe.Line, pe.Column = decErr.Position()
		}
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			pe.Message = "unknown keys:\n" + strictErr.String()
		}
		return pe
	}
	return nil
}
