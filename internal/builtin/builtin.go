// Package builtin ships the function-based contract templates. Unlike stored
// templates, these render through code rather than a {{field}} template
// string, with per-field fallbacks baked into each renderer. They are
// immutable and not persisted; the registry merges them into template
// listings alongside the owner's stored templates.
package builtin

import "github.com/8bitGames/auto-contract/internal/store"

// Template is a built-in, code-rendered template. Sections describe the form
// the UI presents; Render turns the collected data mapping into HTML.
type Template struct {
	ID          string
	Title       string
	Description string
	Sections    []store.Section
	Render      func(data map[string]string) string
}

// Fields flattens the template's section declarations into a single list.
func (t *Template) Fields() []store.Field {
	var fields []store.Field
	for _, s := range t.Sections {
		fields = append(fields, s.Fields...)
	}
	return fields
}

// templates holds the registry in display order.
var templates = []*Template{
	laborContract,
	nda,
	loanAgreement,
}

// All returns the built-in templates in display order.
func All() []*Template {
	return templates
}

// ByID returns the built-in template with the given id, or nil.
func ByID(id string) *Template {
	for _, t := range templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// value returns data[key] or the fallback when unset. Built-in renderers use
// per-field fallbacks instead of the generic compiler marker.
func value(data map[string]string, key, fallback string) string {
	if v := data[key]; v != "" {
		return v
	}
	return fallback
}
