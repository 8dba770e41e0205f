package records

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/RyanHill92/housing/internal/housing"
)

type yamlFile struct {
	Houses []housing.House `yaml:"houses"`
}

// ParseYAML reads a load file holding a top-level "houses" list.
func ParseYAML(r io.Reader) ([]housing.House, error) {
	var doc yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return doc.Houses, nil
}

// WriteYAML encodes houses in the format ParseYAML reads.
func WriteYAML(w io.Writer, houses []housing.House) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlFile{Houses: houses}); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
