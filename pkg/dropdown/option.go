package dropdown

import (
	"fmt"
	"reflect"
)

// Option is a selectable (label, value) pair. Value identifies the option
// and is normally a string or a number.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// String returns the label.
func (o Option) String() string { return o.Label }

// key is a stable rendering key derived from the value.
func (o Option) key() string { return fmt.Sprintf("%T:%v", o.Value, o.Value) }

// Equality decides whether two options denote the same choice.
type Equality func(a, b Option) bool

// ByValue compares options by Value only. Numbers compare by magnitude
// regardless of their Go type, so int 1 equals float64 1.
func ByValue(a, b Option) bool { return ValuesEqual(a.Value, b.Value) }

// ByLabelAndValue compares options by both Label and Value.
func ByLabelAndValue(a, b Option) bool {
	return a.Label == b.Label && ValuesEqual(a.Value, b.Value)
}

// ValuesEqual reports whether two option values are equal. Values of
// non-comparable types are never equal, not even to themselves.
func ValuesEqual(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
