package requirement

import (
	"slices"
	"strings"
)

// Operator is a version comparison operator.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpCompatible   Operator = "~="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
)

// operators is ordered longest first: ">=" must never match as ">".
var operators = []Operator{
	OpEqual,
	OpNotEqual,
	OpGreaterEqual,
	OpLessEqual,
	OpCompatible,
	OpGreater,
	OpLess,
}

// Operators returns the recognized operators in matching order.
func Operators() []Operator {
	return slices.Clone(operators)
}

// MatchOperator matches the operator at the start of s and returns it with
// the remainder of s. ok is false when s does not start with an operator.
func MatchOperator(s string) (op Operator, rest string, ok bool) {
	for _, op := range operators {
		if rest, found := strings.CutPrefix(s, string(op)); found {
			return op, rest, true
		}
	}
	return "", s, false
}
