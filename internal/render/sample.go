package render

import (
	"fmt"
	"time"

	"github.com/8bitGames/auto-contract/internal/store"
)

// Signature-block keys that built-in snippets reference unconditionally.
// They are always populated even when no field declares them.
const (
	KeyContractDate  = "contract_date"
	KeyPartyAName    = "party_a_name"
	KeyPartyAAddress = "party_a_address"
	KeyPartyBName    = "party_b_name"
	KeyPartyBAddress = "party_b_address"
)

// SampleData produces one synthetic value per field for previewing a template
// before real data exists. Text-like fields show their own label in brackets
// to signal placeholder content; dates show today; numeric fields show zero.
func SampleData(fields []store.Field) map[string]string {
	data := make(map[string]string, len(fields)+5)
	today := KoreanDate(time.Now())

	for _, f := range fields {
		switch f.Type {
		case store.FieldText:
			data[f.ID] = "[" + f.Label + "]"
		case store.FieldDate:
			data[f.ID] = today
		case store.FieldNumber:
			data[f.ID] = "0"
		case store.FieldCurrency:
			data[f.ID] = "₩0"
		case store.FieldTextarea:
			data[f.ID] = "[" + f.Label + " 내용]"
		default:
			data[f.ID] = "[" + f.Label + "]"
		}
	}

	data[KeyContractDate] = today
	data[KeyPartyAName] = "[갑 이름]"
	data[KeyPartyAAddress] = "[갑 주소]"
	data[KeyPartyBName] = "[을 이름]"
	data[KeyPartyBAddress] = "[을 주소]"

	return data
}

// KoreanDate formats t the way ko-KR renders a calendar date: "2026. 8. 29.".
func KoreanDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
