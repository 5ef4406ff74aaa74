package flow

import "fmt"

// ChoiceOption is one selectable value within a choice-type question.
// Value may be nil, in which case the label (then image alt, then image
// source) stands in for it.
type ChoiceOption struct {
	Label    string
	Value    any
	Selected bool
	ImageSrc string
	ImageAlt string
}

// EffectiveValue returns the value that becomes the answer when this
// option is selected: Value if set, else Label, else ImageAlt, else
// ImageSrc.
func (o *ChoiceOption) EffectiveValue() any {
	if o.Value != nil {
		return o.Value
	}
	if o.Label != "" {
		return o.Label
	}
	if o.ImageAlt != "" {
		return o.ImageAlt
	}
	if o.ImageSrc != "" {
		return o.ImageSrc
	}
	return nil
}

// EffectiveLabel returns the display text, falling back to the effective
// value when no label was given.
func (o *ChoiceOption) EffectiveLabel() string {
	if o.Label != "" {
		return o.Label
	}
	v := o.EffectiveValue()
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// matches reports whether the option's effective value equals v.
func (o *ChoiceOption) matches(v any) bool {
	return valueEqual(o.EffectiveValue(), v)
}

// valueEqual compares two answer values. Numeric answers may arrive as
// float64 after coercion while options carry int64 from TOML decoding,
// so numbers compare by value rather than by type.
func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
