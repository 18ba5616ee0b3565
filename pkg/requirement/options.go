package requirement

import "strings"

// requirementOptions are the pip options that may follow a requirement on
// the same line, e.g. the hashes written by "pip-compile --generate-hashes".
var requirementOptions = []string{"--hash", "--global-option", "--install-option", "--config-settings"}

// CutOptions splits trailing per-requirement pip options such as
// "--hash=sha256:..." from a comment-stripped line. The options are returned
// as whitespace-separated fields; the requirement itself is trimmed.
func CutOptions(line string) (string, []string) {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			continue
		}
		rest := strings.TrimLeft(line[i:], " \t")
		if isRequirementOption(rest) {
			return strings.TrimSpace(line[:i]), strings.Fields(rest)
		}
	}
	return line, nil
}

func isRequirementOption(s string) bool {
	for _, opt := range requirementOptions {
		rest, ok := strings.CutPrefix(s, opt)
		if !ok {
			continue
		}
		if rest == "" || rest[0] == '=' || rest[0] == ' ' || rest[0] == '\t' {
			return true
		}
	}
	return false
}
