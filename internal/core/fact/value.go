// Package fact defines fact values, the fact registry, and the collector that
// resolves registered facts on demand.
package fact

import "encoding/json"

// Value is the result of resolving a fact: a string, or absent when the fact
// could not be determined on this host. The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Some returns a present Value holding s.
func Some(s string) Value {
	return Value{s: s, ok: true}
}

// Absent returns a Value that carries no data.
func Absent() Value {
	return Value{}
}

// Get returns the held string and whether the value is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// IsPresent reports whether the value holds data.
func (v Value) IsPresent() bool {
	return v.ok
}

// String returns the held string, or "" when absent.
func (v Value) String() string {
	return v.s
}

// MarshalJSON renders absent values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// MarshalYAML renders absent values as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.ok {
		return nil, nil
	}
	return v.s, nil
}
