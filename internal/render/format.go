package render

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var koreanPrinter = message.NewPrinter(language.Korean)

// FormatWon renders a currency field value with thousands separators, e.g.
// "3000000" → "3,000,000". Non-numeric input is returned unchanged so a
// half-typed value never breaks the live preview.
func FormatWon(raw string) string {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return koreanPrinter.Sprintf("%d", n)
}
