// Package poly: the count-prefixed canonical grammar shared by PolyZ and
// PolyQ. Splitting is independent of the coefficient type; the callers
// parse the returned tokens with their own scalar grammar.

package poly

import (
	"strconv"
	"strings"
)

// zeroPolyText is the canonical rendering of the zero polynomial: a bare
// count of zero with no coefficient list and no separator after it.
const zeroPolyText = "0"

// splitCanonical validates "<count>  <c0> <c1> ..." and returns the
// coefficient tokens.
//
// Stage 1 (Zero): the bare "0" denotes the empty polynomial.
// Stage 2 (Separator): the count and the list must be divided by exactly
// two spaces; if the double space is absent entirely the error is the
// dedicated ErrMissingSeparator diagnostic.
// Stage 3 (Count): the count must be plain digits and must equal the number
// of tokens actually present; tokens are divided by exactly one space.
// Complexity: O(len(s)).
func splitCanonical(s string) ([]string, error) {
	if s == zeroPolyText {
		return nil, nil
	}

	head, tail, found := strings.Cut(s, "  ")
	if !found {
		return nil, ErrMissingSeparator
	}

	count, err := strconv.ParseInt(head, 10, 64)
	if err != nil || count < 1 || !isDigits(head) {
		return nil, ErrMalformedInput
	}

	tokens := strings.Split(tail, " ")
	if int64(len(tokens)) != count {
		return nil, ErrMalformedInput
	}
	for _, tok := range tokens {
		// An empty token means consecutive or trailing spaces inside the
		// coefficient list.
		if tok == "" {
			return nil, ErrMalformedInput
		}
	}

	return tokens, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits; the count
// field admits no sign and no other characters.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// joinCanonical renders coefficient tokens back into the canonical grammar.
func joinCanonical(tokens []string) string {
	if len(tokens) == 0 {
		return zeroPolyText
	}

	return strconv.Itoa(len(tokens)) + "  " + strings.Join(tokens, " ")
}
