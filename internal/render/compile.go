// Package render implements the template compilation and variable
// substitution engines behind contract previews and PDF generation.
//
// Two placeholder dialects exist and stay separate on purpose. Form-driven
// HTML templates use {{field_id}} tokens that compile down to a data lookup
// with a visual fallback for missing values. AI-drafted contract prose uses
// [variable] brackets that are replaced literally and left intact when the
// variable has no value yet, mirroring the blank-fill convention of paper
// legal documents.
package render

import "regexp"

// FallbackMarker is substituted for any {{field}} token that has no value.
// It renders as a short underscore run so the document never shows a raw
// template token.
const FallbackMarker = `<span class="text-gray-400">____</span>`

// placeholderRe matches {{identifier}} tokens. Identifiers are word
// characters only; there is no nesting and no escape syntax.
var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// RenderFunc projects a data mapping onto a compiled template.
type RenderFunc func(data map[string]string) string

// Compile parses an HTML template string once and returns a pure rendering
// function. Every {{field_id}} occurrence is replaced with data[field_id],
// or with FallbackMarker when the value is absent or empty. Substituted
// values are not re-scanned, so a value containing {{...}} is emitted as-is.
func Compile(tmpl string) RenderFunc {
	return func(data map[string]string) string {
		return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
			key := match[2 : len(match)-2]
			if v, ok := data[key]; ok && v != "" {
				return v
			}
			return FallbackMarker
		})
	}
}

// Placeholders returns the distinct {{identifier}} names referenced by the
// template, in order of first appearance. It never fails; a template with no
// placeholders yields an empty slice. Used to drive editor autocompletion and
// the variable listing UI — it does not validate anything.
func Placeholders(tmpl string) []string {
	matches := placeholderRe.FindAllStringSubmatch(tmpl, -1)
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
