package output

import (
	"encoding/json"
	"fmt"
)

// Formatter interface for formatting output
type Formatter interface {
	Format(data any) (string, error)
}

// JSONFormatter implements the Formatter interface for JSON output
type JSONFormatter struct {
	indent bool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// NewIndentedJSONFormatter creates a JSON formatter that pretty-prints
func NewIndentedJSONFormatter() *JSONFormatter {
	return &JSONFormatter{indent: true}
}

// Format formats data as JSON
func (f *JSONFormatter) Format(data any) (string, error) {
	var (
		bytes []byte
		err   error
	)
	if f.indent {
		bytes, err = json.MarshalIndent(data, "", "  ")
	} else {
		bytes, err = json.Marshal(data)
	}
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// New returns the formatter registered under name.
func New(name string) (Formatter, error) {
	switch name {
	case "", "json":
		return NewJSONFormatter(), nil
	case "pretty":
		return NewIndentedJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q: use json or pretty", name)
	}
}
