package requirement

import (
	"regexp"
	"strings"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

// versionRE matches the characters PEP 508 allows in a version string.
var versionRE = regexp.MustCompile(`^[A-Za-z0-9._*+!-]+$`)

// VersionSpec is a single version constraint such as ">=1.0".
type VersionSpec struct {
	Op      Operator `json:"op" toml:"op"`
	Version string   `json:"version" toml:"version"`
}

// String returns the constraint without whitespace, e.g. "!=1.1.1".
func (s VersionSpec) String() string {
	return string(s.Op) + s.Version
}

// ParseVersionSpecs parses a comma-separated constraint list such as
// "!=1.1.1, > 1.1" into ordered specs. Order is preserved exactly and
// nothing is deduplicated. An empty list yields no specs. A list wrapped
// in parentheses, as in "name (>=1.0)", is accepted.
func ParseVersionSpecs(s string) ([]VersionSpec, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return nil, nil
	}

	segments := strings.Split(s, ",")
	specs := make([]VersionSpec, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		op, rest, ok := MatchOperator(segment)
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedRequirement, "missing version operator in %q", segment)
		}
		version := strings.TrimSpace(rest)
		if !versionRE.MatchString(version) {
			return nil, errors.New(errors.ErrCodeMalformedRequirement, "invalid version %q in %q", version, segment)
		}
		specs = append(specs, VersionSpec{Op: op, Version: version})
	}
	return specs, nil
}
