package registry

import "slices"

// FieldKind describes how a raw input string is interpreted.
type FieldKind string

// Field kinds.
const (
	KindNumber FieldKind = "number"
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindClock  FieldKind = "clock"
	KindChoice FieldKind = "choice"
)

// Raw input keys shared by every form. Tools bind a subset of them.
const (
	FieldAmount       = "amount"
	FieldInput1       = "input1"
	FieldInput2       = "input2"
	FieldInput3       = "input3"
	FieldFromUnit     = "from_unit"
	FieldToUnit       = "to_unit"
	FieldState        = "state"
	FieldGender       = "gender"
	FieldFilingStatus = "filing_status"
	FieldText         = "text"
)

// FieldKeys lists every raw input key in form order.
func FieldKeys() []string {
	return []string{
		FieldAmount, FieldInput1, FieldInput2, FieldInput3,
		FieldFromUnit, FieldToUnit, FieldState, FieldGender, FieldFilingStatus, FieldText,
	}
}

// FieldSpec declares one form field of a tool.
type FieldSpec struct {
	Key         string    `yaml:"key"                    json:"key"`
	Label       string    `yaml:"label"                  json:"label"`
	Kind        FieldKind `yaml:"kind"                   json:"kind"`
	Default     string    `yaml:"default"                json:"default"`
	Optional    bool      `yaml:"optional,omitempty"     json:"optional,omitempty"`
	OptionsFrom string    `yaml:"options_from,omitempty" json:"-"`
	Options     []string  `yaml:"options,omitempty"      json:"options,omitempty"`
}

// Content is the explanatory copy shown beside a calculator. Values are
// markdown.
type Content struct {
	What    string `yaml:"what"    json:"what"`
	How     string `yaml:"how"     json:"how"`
	Formula string `yaml:"formula" json:"formula"`
}

// FAQ is one question and markdown answer.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer"   json:"answer"`
}

// ToolDescriptor is the static metadata for one calculator.
type ToolDescriptor struct {
	ID           string      `yaml:"id"            json:"id"`
	Title        string      `yaml:"title"         json:"title"`
	Description  string      `yaml:"description"   json:"description"`
	Category     string      `yaml:"category"      json:"category"`
	CategoryLink string      `yaml:"category_link" json:"categoryLink"`
	FormTitle    string      `yaml:"form_title"    json:"formTitle"`
	ResultTitle  string      `yaml:"result_title"  json:"resultTitle"`
	Content      Content     `yaml:"content"       json:"content"`
	FAQ          []FAQ       `yaml:"faq"           json:"faq,omitempty"`
	Fields       []FieldSpec `yaml:"fields"        json:"fields"`
}

func (d ToolDescriptor) clone() ToolDescriptor {
	d.FAQ = slices.Clone(d.FAQ)
	d.Fields = slices.Clone(d.Fields)
	for i := range d.Fields {
		d.Fields[i].Options = slices.Clone(d.Fields[i].Options)
	}
	return d
}

// Field returns the field bound to key.
func (d ToolDescriptor) Field(key string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Defaults maps each bound field key to its default value.
func (d ToolDescriptor) Defaults() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Key] = f.Default
	}
	return out
}

// Category groups tools and supplies their shared presentation defaults.
type Category struct {
	ID          string `yaml:"id"           json:"id"`
	Title       string `yaml:"title"        json:"title"`
	Link        string `yaml:"link"         json:"link"`
	FormTitle   string `yaml:"form_title"   json:"formTitle"`
	ResultTitle string `yaml:"result_title" json:"resultTitle"`
}
