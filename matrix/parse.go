// Package matrix: the bracketed text grammar shared by all matrix types.
// splitRows tokenizes "[[a,b],[c,d]]" into per-row entry tokens; the
// callers parse each token with their own scalar grammar. A single optional
// space is tolerated after every comma on input (the historical engine
// format printed one); canonical output never emits it.

package matrix

import "strings"

// splitRows validates the bracket structure and returns entry tokens per
// row. All rows must have equal, non-zero length; any structural deviation
// is ErrMalformedInput.
// Complexity: O(len(s)).
func splitRows(s string) ([][]string, error) {
	if len(s) < 4 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, ErrMalformedInput
	}
	inner := s[1 : len(s)-1]

	var rows [][]string
	for inner != "" {
		if inner[0] != '[' {
			return nil, ErrMalformedInput
		}
		end := strings.IndexByte(inner, ']')
		if end < 0 {
			return nil, ErrMalformedInput
		}

		tokens := strings.Split(inner[1:end], ",")
		for i, tok := range tokens {
			// One optional space after a comma; anything further fails the
			// entry's own token validation downstream.
			if i > 0 {
				tok = strings.TrimPrefix(tok, " ")
			}
			if tok == "" {
				return nil, ErrMalformedInput
			}
			tokens[i] = tok
		}
		if len(rows) > 0 && len(tokens) != len(rows[0]) {
			return nil, ErrMalformedInput
		}
		rows = append(rows, tokens)

		inner = inner[end+1:]
		switch {
		case inner == "":
			// Last row consumed.
		case inner[0] == ',':
			inner = strings.TrimPrefix(inner[1:], " ")
			if inner == "" {
				return nil, ErrMalformedInput
			}
		default:
			return nil, ErrMalformedInput
		}
	}
	if len(rows) == 0 {
		return nil, ErrMalformedInput
	}

	return rows, nil
}

// cutModSuffix splits "<matrix> mod <m>" into its two halves; found is
// false when no " mod " suffix is present. A second " mod " is malformed.
func cutModSuffix(s string) (body, mod string, found bool, err error) {
	body, mod, found = strings.Cut(s, " mod ")
	if found && strings.Contains(mod, " mod ") {
		return "", "", false, ErrMalformedInput
	}

	return body, mod, found, nil
}
