package requirement

import (
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

// ParseExtras parses the bracket at the start of s, e.g. "[xml, html]",
// and returns the extras with the text following the closing bracket.
// Empty tokens are dropped and duplicates collapse; case is preserved.
func ParseExtras(s string) (extras *strset.Set, rest string, err error) {
	body, ok := strings.CutPrefix(s, "[")
	if !ok {
		return nil, "", errors.New(errors.ErrCodeMalformedExtras, "extras must start with '[': %q", s)
	}
	body, rest, ok = strings.Cut(body, "]")
	if !ok {
		return nil, "", errors.New(errors.ErrCodeMalformedExtras, "unterminated extras bracket in %q", s)
	}
	if strings.Contains(body, "[") {
		return nil, "", errors.New(errors.ErrCodeMalformedExtras, "nested '[' in extras %q", s)
	}

	extras = strset.New()
	for _, token := range strings.Split(body, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if err := errors.ValidatePythonPackageName(token); err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeMalformedExtras, err, "invalid extra %q", token)
		}
		extras.Add(token)
	}
	return extras, rest, nil
}
