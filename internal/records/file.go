package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RyanHill92/housing/internal/housing"
)

// ErrFileNotFound reports a load file that is missing or cannot be opened.
var ErrFileNotFound = errors.New("load file not found")

// ReadFile parses a load file, choosing the YAML format for .yaml and .yml
// files and the whitespace format otherwise.
func ReadFile(path string) ([]housing.House, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	var houses []housing.House
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		houses, err = ParseYAML(f)
	default:
		houses, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return houses, nil
}
