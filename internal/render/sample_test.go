package render

import (
	"strings"
	"testing"
	"time"

	"github.com/8bitGames/auto-contract/internal/store"
)

func TestSampleData_PerFieldType(t *testing.T) {
	fields := []store.Field{
		{ID: "name", Label: "이름", Type: store.FieldText},
		{ID: "start", Label: "시작일", Type: store.FieldDate},
		{ID: "count", Label: "수량", Type: store.FieldNumber},
		{ID: "pay", Label: "급여", Type: store.FieldCurrency},
		{ID: "notes", Label: "특약", Type: store.FieldTextarea},
		{ID: "other", Label: "기타", Type: ""},
	}
	data := SampleData(fields)

	if data["name"] != "[이름]" {
		t.Errorf("text = %q", data["name"])
	}
	if data["start"] != KoreanDate(time.Now()) {
		t.Errorf("date = %q", data["start"])
	}
	if data["count"] != "0" {
		t.Errorf("number = %q", data["count"])
	}
	if data["pay"] != "₩0" {
		t.Errorf("currency = %q", data["pay"])
	}
	if data["notes"] != "[특약 내용]" {
		t.Errorf("textarea = %q", data["notes"])
	}
	if data["other"] != "[기타]" {
		t.Errorf("unknown type = %q", data["other"])
	}
}

func TestSampleData_AlwaysIncludesSignatureKeys(t *testing.T) {
	data := SampleData(nil)
	for _, key := range []string{KeyContractDate, KeyPartyAName, KeyPartyAAddress, KeyPartyBName, KeyPartyBAddress} {
		if data[key] == "" {
			t.Errorf("signature key %q missing", key)
		}
	}
}

func TestKoreanDate(t *testing.T) {
	d := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	if got := KoreanDate(d); got != "2026. 8. 29." {
		t.Errorf("got %q, want %q", got, "2026. 8. 29.")
	}
	// Single-digit month and day carry no zero padding.
	d = time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	if got := KoreanDate(d); got != "2025. 1. 3." {
		t.Errorf("got %q, want %q", got, "2025. 1. 3.")
	}
}

func TestFormatWon(t *testing.T) {
	if got := FormatWon("3000000"); got != "3,000,000" {
		t.Errorf("got %q, want 3,000,000", got)
	}
	if got := FormatWon("0"); got != "0" {
		t.Errorf("got %q, want 0", got)
	}
	// Non-numeric input passes through so a live preview never breaks.
	if got := FormatWon("삼백만"); got != "삼백만" {
		t.Errorf("got %q, want input unchanged", got)
	}
	if got := FormatWon(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSampleData_DrivesTemplatePreview(t *testing.T) {
	fields := []store.Field{
		{ID: "name", Label: "이름", Type: store.FieldText},
		{ID: "amount", Label: "금액", Type: store.FieldCurrency},
	}
	html := Compile("<p>{{name}}: {{amount}}</p>")(SampleData(fields))
	if !strings.Contains(html, "[이름]") || !strings.Contains(html, "₩0") {
		t.Errorf("preview = %q", html)
	}
	if strings.Contains(html, "{{") {
		t.Errorf("raw placeholder leaked: %q", html)
	}
}
