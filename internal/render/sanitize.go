package render

import "github.com/microcosm-cc/bluemonday"

// sanitizePolicy allows only the structural and inline markup a contract
// document needs. Compiled field values are substituted without escaping, so
// user-authored template HTML must pass through Sanitize before it is shown
// in a preview or handed to the PDF renderer.
var sanitizePolicy = buildSanitizePolicy()

func buildSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"ul", "ol", "li",
		"table", "thead", "tbody", "tr", "th", "td",
		"div", "span",
		"strong", "b", "em", "i", "u",
		"a", "img",
	)
	p.AllowAttrs("class", "style").Globally()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowStandardURLs()
	return p
}

// Sanitize strips any markup outside the contract-document allowlist.
func Sanitize(html string) string {
	return sanitizePolicy.Sanitize(html)
}
