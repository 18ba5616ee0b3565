package requirement

import (
	"net/url"
	"strings"
)

// eggKey is the fragment key that names the package behind a location.
const eggKey = "egg"

// StripFragment returns rawURL with everything from the first '#' removed.
// Scheme, host, path and query are preserved verbatim.
func StripFragment(rawURL string) string {
	base, _, _ := strings.Cut(rawURL, "#")
	return base
}

// EggName extracts the package name hint from a URL fragment such as
// "egg=somelib&subdirectory=pkg". The fragment is read like a query
// string: segments without '=' or with an empty value are ignored, and
// the first egg key wins ("egg=a&egg=b" yields "a").
func EggName(fragment string) (string, bool) {
	if !strings.Contains(fragment, "=") {
		return "", false
	}
	for _, segment := range strings.Split(fragment, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || value == "" {
			continue
		}
		if unescape(key) == eggKey {
			return unescape(value), true
		}
	}
	return "", false
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
