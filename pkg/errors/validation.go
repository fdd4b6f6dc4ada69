package errors

import (
	"strings"
	"unicode"
)

// Column count bounds for the preview grid.
const (
	MinColumns = 1
	MaxColumns = 6
)

// ValidateColumns validates a committed column count for the preview grid.
func ValidateColumns(n int) error {
	if n < MinColumns || n > MaxColumns {
		return New(ErrCodeInvalidColumns, "columns must be between %d and %d, got %d", MinColumns, MaxColumns, n)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path for the exported
// retrieval script. The rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFontName validates a font name before it is copied or rendered.
// Names come straight from pasted text, so the rules stay loose: anything
// printable is allowed, only empty names and control characters are rejected.
func ValidateFontName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "font name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font name contains control characters")
		}
	}

	return nil
}
