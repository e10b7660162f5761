// Package cfgerr defines the error taxonomy raised by the grammar, ll1, and
// slr packages. Every error carries both a technical message and enough
// localized context (production indices, renderings, or the offending
// (state, token) pair) to point at the defect without recovering from it.
package cfgerr

import "fmt"

// Kind classifies which stage of construction or parsing produced an error.
type Kind int

const (
	// MalformedRule means a rule line could not be parsed into a Production.
	MalformedRule Kind = iota

	// NotLL1 means two distinct productions were written to the same LL(1)
	// table cell.
	NotLL1

	// NotSLR1 means an SLR(1) action-table cell received two distinct,
	// non-idempotent actions (shift/reduce or reduce/reduce).
	NotSLR1

	// NotInLanguage means a parser driver had no defined action for a
	// (state, token) pair, or a terminal mismatch occurred.
	NotInLanguage
)

func (k Kind) String() string {
	switch k {
	case MalformedRule:
		return "MalformedRule"
	case NotLL1:
		return "NotLL1"
	case NotSLR1:
		return "NotSLR1"
	case NotInLanguage:
		return "NotInLanguage"
	default:
		return "UnknownKind"
	}
}

// cfgError is the concrete type behind every error this package constructs.
type cfgError struct {
	kind string
	msg  string
	wrap error
}

func (e *cfgError) Error() string {
	return e.msg
}

// Unwrap gives the error that this cfgError wraps, if it wraps one.
func (e *cfgError) Unwrap() error {
	return e.wrap
}

// KindOf returns the Kind of err if it is one produced by this package, along
// with true. Otherwise it returns the zero Kind and false.
func KindOf(err error) (Kind, bool) {
	cErr, ok := err.(*cfgError)
	if !ok {
		return 0, false
	}
	for k := MalformedRule; k <= NotInLanguage; k++ {
		if k.String() == cErr.kind {
			return k, true
		}
	}
	return 0, false
}

// Malformed reports a rule line that could not be parsed, e.g. missing the
// "->" separator or having an empty or multi-token left-hand side.
func Malformed(line string, reason string) error {
	return &cfgError{
		kind: MalformedRule.String(),
		msg:  fmt.Sprintf("malformed rule %q: %s", line, reason),
	}
}

// NotLL1Conflict reports that production prodA and prodB both want to occupy
// the LL(1) table cell (nonTerm, term).
func NotLL1Conflict(nonTerm, term string, prodAIdx int, prodA string, prodBIdx int, prodB string) error {
	return &cfgError{
		kind: NotLL1.String(),
		msg: fmt.Sprintf(
			"grammar is not LL(1): cell [%s, %s] wants both production %d (%s) and production %d (%s)",
			nonTerm, term, prodAIdx, prodA, prodBIdx, prodB,
		),
	}
}

// NotSLR1Conflict reports that two distinct LR actions were both written to
// the action-table cell (state, term). conflictKind should be "shift/reduce"
// or "reduce/reduce".
func NotSLR1Conflict(conflictKind string, state int, term string, actA, actB string) error {
	return &cfgError{
		kind: NotSLR1.String(),
		msg: fmt.Sprintf(
			"grammar is not SLR(1): %s conflict in state %d on %q (%s vs %s)",
			conflictKind, state, term, actA, actB,
		),
	}
}

// NotInLanguageAt reports that the parser had no defined action for the given
// state (rendered as a string: an LL(1) stack symbol or an SLR(1) state
// index) and lookahead token.
func NotInLanguageAt(state string, got string) error {
	return &cfgError{
		kind: NotInLanguage.String(),
		msg:  fmt.Sprintf("not in language: no valid action in state %s on input %q", state, got),
	}
}

// Mismatch reports that the driver expected a specific terminal next but
// found a different one.
func Mismatch(expected, got string) error {
	return &cfgError{
		kind: NotInLanguage.String(),
		msg:  fmt.Sprintf("not in language: expected %q but got %q", expected, got),
	}
}
