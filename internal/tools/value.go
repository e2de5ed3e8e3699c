// In file: internal/tools/value.go

// Package tools provides the registry of deterministic functions that the
// reasoning loop can delegate sub-computations to, together with the typed
// argument values those functions operate on.
package tools

import (
	"strconv"
	"strings"
)

// Kind identifies the dynamic type carried by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "string"
	}
}

// Value is a typed scalar passed into and returned from tools.
// Exactly one of the payload fields is meaningful, selected by the kind.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the dynamic type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNumeric reports whether the value can be used where a number is expected.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Float64 returns the value as a float64, promoting integers.
// It is only meaningful for numeric values.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Int64 returns the value as an int64. Floats are truncated toward zero,
// matching how the tools treat fractional inputs to integer operations.
func (v Value) Int64() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}
	return v.i
}

// Bool returns the boolean payload. Only meaningful for KindBool.
func (v Value) Bool() bool { return v.b }

// Text returns the string payload. Only meaningful for KindString.
func (v Value) Text() string { return v.s }

// String renders the value the way it is shown to the model in tool results:
// integers without a decimal point, floats in the shortest exact form,
// booleans as true/false, strings verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Coerce converts one raw argument token into a typed Value.
//
// The policy is total and applied in order, first match wins:
//  1. base-10 integer literal (optional leading '-') -> integer
//  2. floating-point literal -> float
//  3. anything else -> string, with surrounding whitespace trimmed
//
// Surrounding single or double quotes are stripped before matching, so the
// model may write count_vowels('hello') or count_vowels(hello) and both
// resolve to the same argument. Coercion itself never fails; a tool that
// receives a value of the wrong type reports an execution error instead.
func Coerce(raw string) Value {
	token := strings.TrimSpace(raw)
	token = trimQuotes(token)

	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(token)
}

// trimQuotes removes one matching pair of surrounding quotes, if present.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
