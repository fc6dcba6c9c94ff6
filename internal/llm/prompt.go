package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var promptTemplates = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

// promptData holds the variables available to the prompt templates. Each
// template uses the subset it needs.
type promptData struct {
	UserRequest    string
	SectionTitle   string
	CurrentContent string
	SelectedText   string
	Surrounding    string
	Context        string
}

// renderPrompt executes the named embedded prompt template.
func renderPrompt(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// contractContext flattens a full contract into the drafting context that is
// prepended to section-edit prompts. It lists every clause so the model keeps
// terminology and numbering consistent across edits.
func contractContext(c *ContractDraft) string {
	var b strings.Builder
	b.WriteString("[전체 계약서 컨텍스트]\n")
	b.WriteString("계약서 제목: " + c.Title + "\n\n")
	b.WriteString("전체 조항 목록:\n")
	for i, s := range c.Sections {
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, s.Title, s.Content)
	}
	if len(c.Variables) > 0 {
		b.WriteString("계약 변수:\n")
		for _, k := range sortedKeys(c.Variables) {
			fmt.Fprintf(&b, "- %s: %s\n", k, c.Variables[k])
		}
	}
	return b.String()
}
