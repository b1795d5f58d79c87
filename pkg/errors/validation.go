package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateTaskFilename validates a task-file filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateTaskFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidTaskFile, "task file name cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidTaskFile, "task file name cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidTaskFile, "task file name cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a task-file or pom.xml path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - The base name must pass [ValidateTaskFilename]
//
// Absolute paths and parent references are allowed: the path comes from the
// local user, not from a remote caller.
func ValidatePath(path string) error {
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

	if err := ValidateTaskFilename(filepath.Base(path)); err != nil {
		return Wrap(ErrCodeInvalidPath, err, "invalid path %q", path)
	}

	return nil
}
