package gen

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingPlaceholder reports a template that lacks a required token.
var ErrMissingPlaceholder = errors.New("gen: missing template placeholder")

// Placeholder tokens the two template documents must carry.
var (
	HeaderPlaceholders = []string{"PACKAGE", "STRUCT", "FUNCTIONS", "TAGS"}
	SourcePlaceholders = []string{"PACKAGE", "VARIABLES", "STRUCT", "FUNCTIONS"}
)

// LoadTemplate reads a template document and verifies every required
// placeholder token is present. Validation happens here, before anything is
// rendered or written, so a bad template never produces partial output.
func LoadTemplate(path string, required []string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("gen: read template: %w", err)
	}
	text := string(data)
	for _, token := range required {
		if !strings.Contains(text, token) {
			return "", fmt.Errorf("%w: %s in %s", ErrMissingPlaceholder, token, path)
		}
	}
	return text, nil
}
