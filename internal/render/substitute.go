package render

import (
	"sort"
	"strings"
)

// Substitute resolves [variable] placeholders in AI-drafted contract prose.
//
// Replacement is literal substring replacement, not token matching: for each
// key in vars, every exact occurrence of the text "[key]" is replaced with the
// mapped value. A key whose value is empty is replaced with its own bracketed
// placeholder, i.e. left visually unchanged, so an unfilled blank stays a
// blank. Substitute(content, nil) returns content byte-for-byte.
//
// Keys are processed in lexicographic order. Go randomizes map iteration, so
// the order is pinned to keep output deterministic. Because passes are
// sequential, a value that itself contains another key's bracket text is
// rewritten by that key's later pass. That interference is long-standing
// observable behavior; callers rely on renders being repeatable, so don't
// collapse this into a single-pass replacement without revisiting it.
func Substitute(content string, vars map[string]string) string {
	if len(vars) == 0 {
		return content
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := content
	for _, k := range keys {
		placeholder := "[" + k + "]"
		value := vars[k]
		if value == "" {
			value = placeholder
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
