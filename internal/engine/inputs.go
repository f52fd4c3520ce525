package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/registry"
	"github.com/rshade/calckit/internal/units"
)

// ErrInvalidInput is wrapped by every ValidationError.
const ErrInvalidInput = constError("invalid input")

// ErrUnknownField is returned when a raw input key is not recognised.
const ErrUnknownField = constError("unknown input field")

type constError string

func (e constError) Error() string { return string(e) }

// RawInputs holds the untyped form values shared by every calculator. Each
// tool binds a subset of them through its field schema.
type RawInputs struct {
	Amount       string `yaml:"amount,omitempty"        json:"amount,omitempty"`
	Input1       string `yaml:"input1,omitempty"        json:"input1,omitempty"`
	Input2       string `yaml:"input2,omitempty"        json:"input2,omitempty"`
	Input3       string `yaml:"input3,omitempty"        json:"input3,omitempty"`
	FromUnit     string `yaml:"from_unit,omitempty"     json:"fromUnit,omitempty"`
	ToUnit       string `yaml:"to_unit,omitempty"       json:"toUnit,omitempty"`
	State        string `yaml:"state,omitempty"         json:"state,omitempty"`
	Gender       string `yaml:"gender,omitempty"        json:"gender,omitempty"`
	FilingStatus string `yaml:"filing_status,omitempty" json:"filingStatus,omitempty"`
	Text         string `yaml:"text,omitempty"          json:"text,omitempty"`

	// Locale selects month and weekday names in date results.
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`
}

func (in *RawInputs) slot(key string) *string {
	switch key {
	case registry.FieldAmount:
		return &in.Amount
	case registry.FieldInput1:
		return &in.Input1
	case registry.FieldInput2:
		return &in.Input2
	case registry.FieldInput3:
		return &in.Input3
	case registry.FieldFromUnit:
		return &in.FromUnit
	case registry.FieldToUnit:
		return &in.ToUnit
	case registry.FieldState:
		return &in.State
	case registry.FieldGender:
		return &in.Gender
	case registry.FieldFilingStatus:
		return &in.FilingStatus
	case registry.FieldText:
		return &in.Text
	default:
		return nil
	}
}

// Get returns the raw value bound to key.
func (in RawInputs) Get(key string) string {
	if p := in.slot(key); p != nil {
		return *p
	}
	return ""
}

// Set stores value under key.
func (in *RawInputs) Set(key, value string) error {
	p := in.slot(key)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	*p = value
	return nil
}

// InputsFromMap builds RawInputs from a key/value map such as a descriptor's
// defaults.
func InputsFromMap(values map[string]string) (RawInputs, error) {
	var in RawInputs
	for k, v := range values {
		if err := in.Set(k, v); err != nil {
			return RawInputs{}, err
		}
	}
	return in, nil
}

// ValidationError describes one raw input that could not be coerced.
type ValidationError struct {
	Tool   string
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", e.Tool, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// numberReplacer strips the decorations users type around numbers.
//
//nolint:gochecknoglobals // Immutable after initialization.
var numberReplacer = strings.NewReplacer(",", "", "$", "", "%", "", " ", "", "_", "")

// ParseNumber reads a decorated numeric string such as "$1,200" or "7.5%".
// Only finite values parse.
func ParseNumber(s string) (float64, bool) {
	s = numberReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), false
	}
	return v, true
}

// args coerces the raw inputs of one Compute call against the tool's field
// schema. The first strict-mode failure is kept in err; handlers keep
// reading and the failure is reported once they return.
type args struct {
	tool   registry.ToolDescriptor
	in     RawInputs
	strict bool
	now    time.Time

	err     *ValidationError
	problem string
}

func (a *args) field(key string) registry.FieldSpec {
	if f, ok := a.tool.Field(key); ok {
		return f
	}
	return registry.FieldSpec{Key: key, Label: key}
}

// fail records an input problem. In strict mode it becomes a
// ValidationError; otherwise a non-numeric problem turns the result into an
// error row.
func (a *args) fail(key, reason string) {
	if a.strict {
		if a.err == nil {
			a.err = &ValidationError{Tool: a.tool.ID, Field: key, Value: a.in.Get(key), Reason: reason}
		}
		return
	}
	if a.problem == "" {
		a.problem = fmt.Sprintf("%s: %s", a.field(key).Label, reason)
	}
}

// num reads a numeric field. Empty optional fields read as 0. Malformed
// values read as NaN in permissive mode.
func (a *args) num(key string) float64 {
	raw := a.in.Get(key)
	if strings.TrimSpace(raw) == "" && a.field(key).Optional {
		return 0
	}
	v, ok := ParseNumber(raw)
	if !ok && a.strict {
		reason := "not a number"
		if strings.TrimSpace(raw) == "" {
			reason = "required"
		}
		a.fail(key, reason)
	}
	return v
}

// optionalNum is num for fields where blank means "not supplied".
func (a *args) optionalNum(key string) float64 {
	if strings.TrimSpace(a.in.Get(key)) == "" {
		return math.NaN()
	}
	return a.num(key)
}

func (a *args) text(key string) string {
	s := strings.TrimSpace(a.in.Get(key))
	if s == "" && !a.field(key).Optional {
		a.fail(key, "required")
	}
	return s
}

// date reads a calendar date. Blank optional dates mean today.
func (a *args) date(key string) time.Time {
	raw := strings.TrimSpace(a.in.Get(key))
	if raw == "" && a.field(key).Optional {
		return a.now
	}
	t, err := calc.ParseDate(raw)
	if err != nil {
		a.fail(key, "not a date")
		return a.now
	}
	return t
}

func (a *args) clock(key string) int {
	m, err := calc.ParseClock(a.in.Get(key))
	if err != nil {
		a.fail(key, "not a time of day")
	}
	return m
}

func (a *args) gender() calc.Gender {
	g, err := calc.ParseGender(a.in.Gender)
	if err != nil {
		a.fail(registry.FieldGender, "unknown gender")
		return calc.Male
	}
	return g
}

func (a *args) filingStatus() calc.FilingStatus {
	s, err := calc.ParseFilingStatus(a.in.FilingStatus)
	if err != nil {
		a.fail(registry.FieldFilingStatus, "unknown filing status")
		return calc.FilingSingle
	}
	return s
}

func (a *args) activity(key string) calc.ActivityLevel {
	l, err := calc.ParseActivityLevel(a.in.Get(key))
	if err != nil {
		a.fail(key, "unknown activity level")
		return calc.ActivityModerate
	}
	return l
}

// state resolves the state field. Permissive mode treats an unknown state as
// one without income tax.
func (a *args) state() units.StateTaxRecord {
	rec, err := units.LookupState(a.in.State)
	if err == nil {
		return rec
	}
	if a.strict {
		a.fail(registry.FieldState, "unknown state")
		return units.StateTaxRecord{}
	}
	name := strings.TrimSpace(a.in.State)
	return units.StateTaxRecord{Code: name, Name: name}
}

// unit resolves a linear unit. Permissive mode falls back to a factor of 1.
func (a *args) unit(kind units.Kind, key string) units.Unit {
	name := strings.TrimSpace(a.in.Get(key))
	u, err := units.Lookup(kind, name)
	if err == nil {
		return u
	}
	if a.strict {
		a.fail(key, "unknown "+string(kind)+" unit")
	}
	return units.Unit{Name: name, Factor: units.FactorOrIdentity(kind, name)}
}

// temperature resolves a temperature unit. Permissive mode treats an
// unknown unit as Celsius.
func (a *args) temperature(key string) units.TemperatureUnit {
	name := strings.TrimSpace(a.in.Get(key))
	u, err := units.LookupTemperature(name)
	if err == nil {
		return u
	}
	if a.strict {
		a.fail(key, "unknown temperature unit")
	}
	return units.TemperatureUnit{Name: name, Scale: units.ScaleCelsius}
}
