package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Field types accepted in template section declarations.
const (
	FieldText     = "text"
	FieldDate     = "date"
	FieldNumber   = "number"
	FieldCurrency = "currency"
	FieldTextarea = "textarea"
)

// Field is a single form input declaration. ID is the substitution key used
// by {{id}} placeholders in the owning template's HTML.
type Field struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Type         string `json:"type"`
	Placeholder  string `json:"placeholder,omitempty"`
	Required     bool   `json:"required,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty"`
}

// Section is an ordered group of fields under a display title. Grouping is
// presentational only; sections carry no semantic dependency on each other.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// ContractSection is a titled prose block of an AI-drafted contract. Content
// may contain [variable] placeholders; they are resolved at render time, never
// rewritten in storage.
type ContractSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Sections is a JSON document column holding a template's section list.
type Sections []Section

func (s Sections) Value() (driver.Value, error) {
	if s == nil {
		s = Sections{}
	}
	return json.Marshal(s)
}

func (s *Sections) Scan(src any) error {
	return scanJSON(src, s, "sections")
}

// ContractSections is a JSON document column holding a contract's prose blocks.
type ContractSections []ContractSection

func (s ContractSections) Value() (driver.Value, error) {
	if s == nil {
		s = ContractSections{}
	}
	return json.Marshal(s)
}

func (s *ContractSections) Scan(src any) error {
	return scanJSON(src, s, "contract sections")
}

// Variables is a JSON document column holding a contract's variable mapping.
type Variables map[string]string

func (v Variables) Value() (driver.Value, error) {
	if v == nil {
		v = Variables{}
	}
	return json.Marshal(v)
}

func (v *Variables) Scan(src any) error {
	return scanJSON(src, v, "variables")
}

func scanJSON(src, dst any, what string) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("cannot scan %T into %s", src, what)
	}
}
