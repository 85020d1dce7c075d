package engine

import "strings"

// Parse splits raw player input into a verb and argument tokens. Input is
// lower-cased, trimmed and split on whitespace; the first token is the
// verb. Empty input yields an empty verb, which callers must reject.
// There is no quoting or escaping support.
func Parse(raw string) (verb string, args []string) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
