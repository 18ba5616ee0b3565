package requirement

import (
	"regexp"
	"strings"
)

// commentRE matches a '#' that opens a comment. A '#' glued to the
// preceding text is a URL fragment and does not match.
var commentRE = regexp.MustCompile(`(^|[ \t])#`)

// StripComment removes a trailing inline comment from line and trims the
// result.
func StripComment(line string) string {
	line = strings.TrimSpace(line)
	if loc := commentRE.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}
	return strings.TrimSpace(line)
}
