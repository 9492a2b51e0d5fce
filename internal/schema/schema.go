// Package schema declares the configuration surface a widget exposes
// to the builder: typed, labeled fields with defaults and conditional
// visibility. Values stay string-typed so they round-trip through
// storage unchanged.
package schema

import (
	"fmt"

	"github.com/jask/clockboard/internal/timezones"
)

// Kind is the input control a field renders as.
type Kind int

const (
	KindSelect Kind = iota
	KindToggle
	KindText
	KindTimezone
)

// Option is one selectable value of a KindSelect field.
type Option struct {
	Value string
	Label string
}

// Values holds a widget instance's configuration. Toggle fields store
// "true" or "false".
type Values map[string]string

func (v Values) Bool(key string) bool { return v[key] == "true" }

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Field is one configurable option. ShowIf, when set, hides the field
// unless the current values satisfy it.
type Field struct {
	Key     string
	Label   string
	Kind    Kind
	Options []Option
	Default string
	ShowIf  func(Values) bool
}

func (f Field) Visible(v Values) bool {
	return f.ShowIf == nil || f.ShowIf(v)
}

func (f Field) optionAllowed(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Schema is the ordered field list for one widget kind.
type Schema []Field

// Field looks up a field by key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ApplyDefaults returns a copy of v with every missing key filled from
// the field defaults. Present keys are left alone.
func (s Schema) ApplyDefaults(v Values) Values {
	out := v.Clone()
	if out == nil {
		out = Values{}
	}
	for _, f := range s {
		if _, ok := out[f.Key]; !ok {
			out[f.Key] = f.Default
		}
	}
	return out
}

// Visible returns the fields shown for the current values, in schema
// order.
func (s Schema) Visible(v Values) []Field {
	out := make([]Field, 0, len(s))
	for _, f := range s {
		if f.Visible(v) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every present value against its field. Keys without
// a field are rejected so stale options surface instead of lingering.
func (s Schema) Validate(v Values) error {
	for key, value := range v {
		f, ok := s.Field(key)
		if !ok {
			return fmt.Errorf("unknown option %q", key)
		}
		switch f.Kind {
		case KindSelect:
			if !f.optionAllowed(value) {
				return fmt.Errorf("option %q: value %q not allowed", key, value)
			}
		case KindToggle:
			if value != "true" && value != "false" {
				return fmt.Errorf("option %q: want true or false, got %q", key, value)
			}
		case KindTimezone:
			if value == "" {
				continue
			}
			if _, err := timezones.Load(value); err != nil {
				return fmt.Errorf("option %q: %w", key, err)
			}
		}
	}
	return nil
}
