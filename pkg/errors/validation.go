package errors

import (
	"regexp"
	"unicode"
)

// maxLineLength bounds a single requirement line. pip itself has no limit;
// anything longer is almost certainly not a requirement.
const maxLineLength = 4096

// ValidateLine rejects input that cannot be a requirement line at all:
// overlong lines and control characters other than tab.
func ValidateLine(line string) error {
	if len(line) > maxLineLength {
		return New(ErrCodeInvalidInput, "line too long (max %d characters)", maxLineLength)
	}
	for _, r := range line {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "line contains invalid control characters")
		}
	}
	return nil
}

// pythonPackageNameRegex matches valid Python package names (PEP 508).
var pythonPackageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePythonPackageName validates a Python package name per PEP 508.
// Extra names share the same identifier grammar.
func ValidatePythonPackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}
	if !pythonPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid Python package name: %q", name)
	}
	return nil
}
