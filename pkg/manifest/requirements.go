// Package manifest feeds requirements manifest content through the
// requirement parser line by line.
//
// It never opens files: callers hand it an [io.Reader] and decide what
// happens to malformed lines through [Policy].
package manifest

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// Policy decides what happens to a line the parser rejects.
type Policy int

const (
	// PolicySkip records the line in Result.Skipped and keeps scanning.
	PolicySkip Policy = iota
	// PolicyAbort stops at the first malformed line and returns its error.
	PolicyAbort
)

// Options configures ParseRequirements.
type Options struct {
	Policy Policy
	Logger *log.Logger // nil discards log output
}

// Entry is one parsed requirement and where it came from.
type Entry struct {
	Line        int    // 1-based line number of the first physical line
	Raw         string // logical line, continuations joined
	Editable    bool     // line carried -e / --editable
	Options     []string // per-requirement options such as --hash
	Requirement requirement.Requirement
}

// Skipped is a line rejected under PolicySkip.
type Skipped struct {
	Line int
	Raw  string
	Err  error
}

// Result holds everything read from one manifest.
type Result struct {
	Entries []Entry
	Skipped []Skipped
}

// Unique returns the parsed requirements with duplicates removed, comparing
// canonical forms. The first occurrence wins and source order is kept.
func (r *Result) Unique() []requirement.Requirement {
	seen := make(map[string]bool, len(r.Entries))
	var out []requirement.Requirement
	for _, e := range r.Entries {
		key := requirement.Format(e.Requirement)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e.Requirement)
	}
	return out
}

// ParseRequirements reads pip requirements lines from rd. Blank lines,
// comment lines and pip options such as -r or --index-url are skipped;
// lines ending in a backslash are joined with the next one, except comment
// lines, which also end a pending continuation.
func ParseRequirements(rd io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	result := &Result{}
	scanner := bufio.NewScanner(rd)

	var (
		pending   strings.Builder
		startLine int
		lineNo    int
	)
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if pending.Len() == 0 {
			startLine = lineNo
		}
		if isCommentLine(text) {
			text = " " + text
		} else if body, ok := strings.CutSuffix(text, `\`); ok {
			pending.WriteString(body)
			continue
		}
		pending.WriteString(text)
		line := pending.String()
		pending.Reset()

		if err := handleLine(result, startLine, line, opts.Policy, logger); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read requirements")
	}
	if pending.Len() > 0 {
		if err := handleLine(result, startLine, pending.String(), opts.Policy, logger); err != nil {
			return nil, err
		}
	}

	logger.Debug("Parsed requirements", "entries", len(result.Entries), "skipped", len(result.Skipped))
	return result, nil
}

func handleLine(result *Result, lineNo int, line string, policy Policy, logger *log.Logger) error {
	stripped := requirement.StripComment(line)
	if stripped == "" {
		return nil
	}
	rest, editable := requirement.CutEditable(stripped)
	if !editable && strings.HasPrefix(rest, "-") {
		logger.Debug("Skipping pip option", "line", lineNo, "option", rest)
		return nil
	}

	_, options := requirement.CutOptions(rest)

	req, err := requirement.Parse(line)
	if err != nil {
		if policy == PolicyAbort {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", lineNo)
		}
		logger.Warn("Skipping malformed requirement", "line", lineNo, "err", errors.UserMessage(err))
		result.Skipped = append(result.Skipped, Skipped{Line: lineNo, Raw: line, Err: err})
		return nil
	}

	result.Entries = append(result.Entries, Entry{
		Line:        lineNo,
		Raw:         line,
		Editable:    editable,
		Options:     options,
		Requirement: req,
	})
	return nil
}

func isCommentLine(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t"), "#")
}
