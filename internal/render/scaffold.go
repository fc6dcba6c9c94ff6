package render

import (
	"fmt"
	"strings"

	"github.com/8bitGames/auto-contract/internal/store"
)

// DefaultTemplate builds a starter HTML template from a title and section
// declarations: heading, a parties sentence when a parties section exists,
// a numbered clause per remaining section, and the standard signature block.
// Every field becomes a {{field_id}} placeholder the compiler understands.
func DefaultTemplate(title string, sections []store.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1 class=\"text-2xl font-bold text-center mb-8\">%s</h1>\n\n", title)

	if parties := findPartiesSection(sections); parties != nil && len(parties.Fields) >= 2 {
		fmt.Fprintf(&b, `<div class="mb-6">
  <p class="mb-2">
    <span class="font-bold">{{%s}}</span> (이하 "갑"이라 함)과(와)
    <span class="font-bold">{{%s}}</span> (이하 "을"이라 함)은(는) 다음과 같이 계약을 체결한다.
  </p>
</div>

`, parties.Fields[0].ID, parties.Fields[1].ID)
	}

	b.WriteString("<ol class=\"list-decimal list-outside pl-5 space-y-4\">\n")
	for _, section := range sections {
		if isPartiesSection(section) {
			continue
		}
		b.WriteString("  <li>\n")
		fmt.Fprintf(&b, "    <span class=\"font-bold\">%s</span>\n", section.Title)
		for _, field := range section.Fields {
			fmt.Fprintf(&b, "    <p class=\"ml-2\">- %s: {{%s}}</p>\n", field.Label, field.ID)
		}
		b.WriteString("  </li>\n")
	}
	b.WriteString("</ol>\n\n")

	b.WriteString(signatureBlock)
	return b.String()
}

// signatureBlock references the fixed signature keys that SampleData always
// populates.
const signatureBlock = `<div class="mt-12 pt-8 border-t">
  <p class="text-center mb-8">위 계약 내용을 확인하고, 계약 당사자가 서명 또는 날인한다.</p>

  <p class="text-center mb-8">계약일: {{contract_date}}</p>

  <div class="grid grid-cols-2 gap-8 mt-8">
    <div class="text-center">
      <p class="font-bold mb-4">(갑)</p>
      <p>상호/성명: {{party_a_name}}</p>
      <p>주소: {{party_a_address}}</p>
      <p class="mt-4">서명: ________________</p>
    </div>
    <div class="text-center">
      <p class="font-bold mb-4">(을)</p>
      <p>상호/성명: {{party_b_name}}</p>
      <p>주소: {{party_b_address}}</p>
      <p class="mt-4">서명: ________________</p>
    </div>
  </div>
</div>`

func findPartiesSection(sections []store.Section) *store.Section {
	for i := range sections {
		if isPartiesSection(sections[i]) {
			return &sections[i]
		}
	}
	return nil
}

func isPartiesSection(s store.Section) bool {
	return s.ID == "parties" ||
		strings.Contains(s.Title, "당사자") ||
		strings.Contains(s.Title, "계약자")
}
