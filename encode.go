package yaixm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the top level of a YAIXM airspace file.
type Document struct {
	Airspace []Airspace `yaml:"airspace"`
}

// DefaultIndent is the indentation Encode uses.
const DefaultIndent = 2

// Encode writes airspaces as a YAIXM document to w.
func Encode(w io.Writer, airspaces []Airspace) error {
	return EncodeIndent(w, airspaces, DefaultIndent)
}

// EncodeIndent is Encode with a custom indentation width.
func EncodeIndent(w io.Writer, airspaces []Airspace, indent int) error {
	if airspaces == nil {
		airspaces = []Airspace{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(Document{Airspace: airspaces}); err != nil {
		CT().Errorf("YAIXM encoding failed: %v", err)
		return fmt.Errorf("encoding airspace: %w", err)
	}
	CT().Debugf("encoded %d airspace(s)", len(airspaces))
	return enc.Close()
}
