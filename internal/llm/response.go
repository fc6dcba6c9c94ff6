package llm

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	contractSchema = mustCompileSchema("schemas/contract.json")
	templateSchema = mustCompileSchema("schemas/template.json")
)

func mustCompileSchema(path string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(path, strings.NewReader(string(raw))); err != nil {
		panic(err)
	}
	return c.MustCompile(path)
}

var fenceRe = regexp.MustCompile("```(?:json)?\\n?")

// stripFences removes markdown code fences the model sometimes wraps its JSON
// in despite being told not to.
func stripFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(s, ""))
}

// decodeJSON strips fences, validates the payload against the schema, and
// unmarshals it into out. Validation failures come back as
// ErrMalformedResponse so handlers can tell a bad model reply from an
// upstream outage.
func decodeJSON(raw string, schema *jsonschema.Schema, out any) error {
	cleaned := stripFences(raw)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// normalizeTemplate fills in ids, labels, and types the model left blank so a
// parsed template is always usable as a form definition.
func normalizeTemplate(t *TemplateDraft) {
	for si := range t.Sections {
		s := &t.Sections[si]
		if s.ID == "" {
			s.ID = fmt.Sprintf("section_%d", si)
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("섹션 %d", si+1)
		}
		for fi := range s.Fields {
			f := &s.Fields[fi]
			if f.ID == "" {
				f.ID = fmt.Sprintf("field_%d_%d", si, fi)
			}
			if f.Label == "" {
				f.Label = fmt.Sprintf("필드 %d", fi+1)
			}
			if f.Type == "" {
				f.Type = "text"
			}
		}
	}
}
