package mdctx

import "log/slog"

// Value is one slot of the diagnostic context. A key is either absent or
// present; a present key holds an optional string, where a nil pointer
// models a stored null entry. The empty string is an ordinary value,
// distinct from both an absent key and a stored null.
type Value struct {
	exists bool
	value  *string
}

// Absent returns the Value describing a key that is not in the context.
func Absent() Value {
	return Value{}
}

// Of returns a present Value holding v.
func Of(v string) Value {
	return Value{exists: true, value: &v}
}

// OfPtr returns a present Value holding v. A nil v is the stored null
// marker, which is still a present entry.
func OfPtr(v *string) Value {
	if v == nil {
		return Value{exists: true}
	}

	s := *v
	return Value{exists: true, value: &s}
}

// Exists reports whether the key is present in the context at all.
func (v Value) Exists() bool {
	return v.exists
}

// IsNull reports whether the key is present but holds the null marker.
func (v Value) IsNull() bool {
	return v.exists && v.value == nil
}

// Ptr returns the held string, or nil for both an absent key and a present
// null entry; use Exists and IsNull to tell those apart. The returned
// pointer is a copy, so callers cannot mutate the Value through it.
func (v Value) Ptr() *string {
	if v.value == nil {
		return nil
	}

	s := *v.value
	return &s
}

// Equal reports structural equality: both absent, both null, or both
// holding the same string.
func (v Value) Equal(o Value) bool {
	if v.exists != o.exists {
		return false
	}

	if v.value == nil || o.value == nil {
		return v.value == nil && o.value == nil
	}

	return *v.value == *o.value
}

// String renders the three states unambiguously for diagnostics.
func (v Value) String() string {
	switch {
	case !v.exists:
		return "<absent>"
	case v.value == nil:
		return "<null>"
	default:
		return *v.value
	}
}

// LogValue implements slog.LogValuer so drift diagnostics render the
// three-way state without extra formatting at the call site.
func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
