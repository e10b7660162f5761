package grammar

import (
	"strings"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
)

// rawRule is an intermediate, unclassified form of a rule line: a
// left-hand side token and its ordered alternatives, each a (possibly
// empty) sequence of raw tokens.
type rawRule struct {
	lhs  string
	alts [][]string
}

// parseRuleLines splits rule text into rawRules, preserving both the order
// of lines and the order of alternatives within a line. It does not yet
// know which tokens are terminals versus non-terminals; that requires
// having seen every line's left-hand side first.
func parseRuleLines(lines []string) ([]rawRule, error) {
	var rules []rawRule

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil, cfgerr.Malformed(line, "blank line")
		}

		sides := strings.SplitN(trimmed, "->", 2)
		if len(sides) != 2 {
			return nil, cfgerr.Malformed(line, `missing "->" separator`)
		}

		lhs := strings.TrimSpace(sides[0])
		lhsFields := strings.Fields(lhs)
		if len(lhsFields) != 1 {
			return nil, cfgerr.Malformed(line, "left-hand side must be exactly one token")
		}

		rhsText := sides[1]
		altTexts := strings.Split(rhsText, "|")

		alts := make([][]string, 0, len(altTexts))
		for _, altText := range altTexts {
			alts = append(alts, strings.Fields(altText))
		}

		rules = append(rules, rawRule{lhs: lhsFields[0], alts: alts})
	}

	return rules, nil
}
