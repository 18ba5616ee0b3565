package requirement

import (
	"regexp"
	"slices"
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

var (
	nameTokenRE = regexp.MustCompile(`^[A-Za-z0-9._-]+`)
	schemeRE    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)
	drivePathRE = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
)

// vcsNames are the version control systems pip can check out. Each is
// also accepted as a bare transport ("git://").
var vcsNames = []string{"git", "hg", "svn", "bzr"}

// archiveSchemes are the plain network schemes accepted for archive URLs.
var archiveSchemes = []string{"http", "https", "ftp", "file"}

// editableMarkers are checked in order; "--editable" also accepts '='.
var editableMarkers = []string{"--editable", "-e"}

// Parse parses a single requirement line. Comments and editable markers
// are removed first; the remainder is classified as a location or a named
// requirement as described in the package documentation.
func Parse(line string) (Requirement, error) {
	if err := errors.ValidateLine(line); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedRequirement, err, "unreadable requirement line")
	}

	s, _ := CutEditable(StripComment(line))
	s, _ = CutOptions(s)
	if s == "" {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "empty requirement in %q", line)
	}

	if hasPathPrefix(s) {
		return parseLocation(s)
	}
	if i := strings.Index(leadingToken(s), "://"); i >= 0 {
		return parseURL(s, i)
	}
	if hasPathSeparator(s) {
		return parseLocation(s)
	}
	return parseNamed(s)
}

// CutEditable removes a leading "-e" or "--editable" marker from a
// comment-stripped line. It reports whether a marker was found; the
// parsed requirement does not retain it.
func CutEditable(line string) (string, bool) {
	for _, marker := range editableMarkers {
		rest, ok := strings.CutPrefix(line, marker)
		if !ok || rest == "" {
			continue
		}
		switch rest[0] {
		case ' ', '\t':
			return strings.TrimSpace(rest), true
		case '=':
			if marker == "--editable" {
				return strings.TrimSpace(rest[1:]), true
			}
		}
	}
	return line, false
}

func hasPathPrefix(s string) bool {
	switch s[0] {
	case '.', '/', '~', '\\':
		return true
	}
	return drivePathRE.MatchString(s)
}

// leadingToken returns s up to the first whitespace or marker separator.
// Only this part decides between URL, path and name, so
// "pkg; platform == 'a/b'" stays a named requirement.
func leadingToken(s string) string {
	if i := strings.IndexAny(s, " \t;"); i >= 0 {
		return s[:i]
	}
	return s
}

func hasPathSeparator(s string) bool {
	return strings.ContainsAny(leadingToken(s), `/\`)
}

func parseURL(s string, schemeEnd int) (Requirement, error) {
	scheme := s[:schemeEnd]
	if !schemeRE.MatchString(scheme) {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "invalid URL scheme %q in %q", scheme, s)
	}
	normalized, ok := normalizeScheme(scheme)
	if !ok {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "unsupported URL scheme %q in %q", scheme, s)
	}
	return parseLocation(normalized + s[schemeEnd:])
}

// normalizeScheme rewrites a bare VCS scheme to its explicit "vcs+transport"
// form. Explicit forms and archive schemes are returned unchanged.
func normalizeScheme(scheme string) (string, bool) {
	lower := strings.ToLower(scheme)
	if vcs, transport, ok := strings.Cut(lower, "+"); ok {
		return scheme, transport != "" && slices.Contains(vcsNames, vcs)
	}
	if slices.Contains(vcsNames, lower) {
		return lower + "+" + lower, true
	}
	return scheme, slices.Contains(archiveSchemes, lower)
}

// parseLocation builds a location from the first whitespace-separated field
// of s. Only an environment marker may follow it.
func parseLocation(s string) (Requirement, error) {
	raw, trailing := s, ""
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		raw, trailing = s[:i], strings.TrimSpace(s[i:])
	}
	if trailing != "" && !strings.HasPrefix(trailing, ";") {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "unexpected %q after location %q", trailing, raw)
	}

	loc := &Location{url: StripFragment(raw)}
	if loc.url == "" {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "no path or URL before the fragment in %q", raw)
	}
	_, fragment, _ := strings.Cut(raw, "#")
	if name, ok := EggName(fragment); ok {
		loc.name = strings.ToLower(name)
	}
	return loc, nil
}

func parseNamed(s string) (Requirement, error) {
	token := nameTokenRE.FindString(s)
	if token == "" {
		return nil, errors.New(errors.ErrCodeMalformedRequirement, "expected a package name or location in %q", s)
	}
	if err := errors.ValidatePythonPackageName(token); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedRequirement, err, "bad package name in %q", s)
	}

	n := &Named{name: strings.ToLower(token), extras: strset.New()}
	rest := strings.TrimLeft(s[len(token):], " \t")
	if strings.HasPrefix(rest, "[") {
		extras, after, err := ParseExtras(rest)
		if err != nil {
			return nil, err
		}
		n.extras = extras
		rest = after
	}

	// Environment markers are accepted and dropped.
	constraints, _, _ := strings.Cut(rest, ";")
	specs, err := ParseVersionSpecs(constraints)
	if err != nil {
		return nil, err
	}
	n.specs = specs
	return n, nil
}
