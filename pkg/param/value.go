package param

import "fmt"

// Kind is the semantic type of a block parameter. Coercion of declared
// attribute values is driven entirely by the kind recorded in the default
// table, never by ad-hoc key checks at the call site.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindNullableInt
)

// Value is one typed parameter value.
type Value struct {
	Kind Kind
	Str  string
	Int  int
	Bool bool
	// Null marks a nullable-integer carrying no value.
	Null bool
}

// StringVal builds a string value.
func StringVal(s string) Value { return Value{Kind: KindString, Str: s} }

// IntVal builds an integer value.
func IntVal(n int) Value { return Value{Kind: KindInt, Int: n} }

// BoolVal builds a boolean value.
func BoolVal(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NullableIntVal builds a nullable-integer holding n.
func NullableIntVal(n int) Value { return Value{Kind: KindNullableInt, Int: n} }

// NullInt builds a nullable-integer holding nothing.
func NullInt() Value { return Value{Kind: KindNullableInt, Null: true} }

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindNullableInt:
		if v.Null {
			return "none"
		}
		return fmt.Sprintf("%d", v.Int)
	default:
		return v.Str
	}
}

// Interface returns the value in its natural Go shape, with null
// nullable-integers as nil. Used when serializing a resolved configuration.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindBool:
		return v.Bool
	case KindNullableInt:
		if v.Null {
			return nil
		}
		return v.Int
	default:
		return v.Str
	}
}

// Defaults is the immutable per-feature default table: every key a block may
// declare, with its kind and fallback value.
type Defaults map[string]Value

// Config is a fully resolved parameter set. It always contains exactly the
// keys of the default table it was resolved against.
type Config map[string]Value

// Str returns the string value for key (zero value when absent or not a string).
func (c Config) Str(key string) string { return c[key].Str }

// Int returns the integer value for key.
func (c Config) Int(key string) int { return c[key].Int }

// Bool returns the boolean value for key.
func (c Config) Bool(key string) bool { return c[key].Bool }

// NullableInt returns the value for key and whether it is non-null.
func (c Config) NullableInt(key string) (int, bool) {
	v := c[key]
	return v.Int, !v.Null
}
