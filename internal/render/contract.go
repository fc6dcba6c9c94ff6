package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/8bitGames/auto-contract/internal/store"
)

// Contract renders an AI-drafted contract document as HTML: the title, each
// prose section with its [variable] placeholders resolved via Substitute, and
// the party signature footer. Section content is prose, not markup, so it is
// HTML-escaped before embedding.
func Contract(c *store.Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1 class=\"text-2xl font-bold text-center mb-8\">%s</h1>\n", html.EscapeString(c.Title))

	b.WriteString("<div class=\"space-y-6\">\n")
	for _, section := range c.Sections {
		content := Substitute(section.Content, c.Variables)
		fmt.Fprintf(&b, "  <div>\n    <h2 class=\"font-bold mb-2\">%s</h2>\n    <div class=\"whitespace-pre-wrap\">%s</div>\n  </div>\n",
			html.EscapeString(section.Title), html.EscapeString(content))
	}
	b.WriteString("</div>\n")

	b.WriteString(contractFooter(c.Variables))
	return b.String()
}

// contractFooter renders the 갑/을 signature footer. Party details come from
// the conventional variable names the drafting prompts ask the model to use;
// an unset detail shows an underscore run, same as a paper form.
func contractFooter(vars map[string]string) string {
	v := func(key, blank string) string {
		if val := vars[key]; val != "" {
			return html.EscapeString(val)
		}
		return blank
	}
	const line = "________________"
	const short = "__________"

	return fmt.Sprintf(`<div class="mt-12 flex justify-between items-end">
  <div class="text-center">
    <p class="mb-4 font-bold">(갑)</p>
    <p>상호: %s</p>
    <p>주소: %s</p>
    <p>대표자: %s (서명)</p>
  </div>
  <div class="text-center">
    <p class="mb-4 font-bold">(을)</p>
    <p>상호/성명: %s</p>
    <p>주소: %s</p>
    <p>연락처: %s</p>
  </div>
</div>
`, v("갑_명칭", line), v("갑_주소", line), v("갑_대표자", short),
		v("을_명칭", line), v("을_주소", line), v("을_연락처", line))
}
