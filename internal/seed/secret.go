// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package seed

import "fmt"

// Size is the fixed byte length of every master and child seed in this
// module.
const Size = 32

// Master is the 32-byte secret derived once per session from a passphrase
// and organization identifier. It is never serialized and never leaves the
// process except through an explicit, host-driven sealed export; the zero
// value is not a valid Master.
type Master struct {
	b [Size]byte
}

// Child is a 32-byte secret derived from a Master via a hierarchical,
// dotted label. Two distinct labels yield cryptographically independent
// Child seeds; the same (Master, label) pair always yields the same Child.
type Child struct {
	b [Size]byte
}

// newMaster copies raw into a Master, zeroizing raw before returning.
func newMaster(raw []byte) Master {
	var m Master
	copy(m.b[:], raw)
	zero(raw)
	return m
}

// newChild copies raw into a Child, zeroizing raw before returning.
func newChild(raw []byte) Child {
	var c Child
	copy(c.b[:], raw)
	zero(raw)
	return c
}

// Bytes returns a defensive copy of the underlying secret. Callers that
// retain the returned slice beyond the scope of a single derivation are
// responsible for zeroizing it themselves.
func (m Master) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, m.b[:])
	return out
}

// Bytes returns a defensive copy of the underlying secret. Callers that
// retain the returned slice beyond the scope of a single derivation are
// responsible for zeroizing it themselves.
func (c Child) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, c.b[:])
	return out
}

// Zeroize overwrites the master seed's backing bytes with zeros. It is safe
// to call multiple times and safe to call on a zero-value Master.
func (m *Master) Zeroize() {
	for i := range m.b {
		m.b[i] = 0
	}
}

// Zeroize overwrites the child seed's backing bytes with zeros. It is safe
// to call multiple times and safe to call on a zero-value Child.
func (c *Child) Zeroize() {
	for i := range c.b {
		c.b[i] = 0
	}
}

// String implements fmt.Stringer by rendering a redacted placeholder so
// that accidental logging or error wrapping never leaks secret material.
func (m Master) String() string {
	return "<redacted>"
}

// String implements fmt.Stringer by rendering a redacted placeholder so
// that accidental logging or error wrapping never leaks secret material.
func (c Child) String() string {
	return "<redacted>"
}

// GoString implements fmt.GoStringer for the same reason String does; it
// governs %#v formatting used by some test frameworks and debuggers.
func (m Master) GoString() string { return "<redacted>" }

// GoString implements fmt.GoStringer for the same reason String does; it
// governs %#v formatting used by some test frameworks and debuggers.
func (c Child) GoString() string { return "<redacted>" }

var _ fmt.Stringer = Master{}
var _ fmt.Stringer = Child{}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// WithMaster scopes the acquisition of a Master's raw bytes to fn, and
// guarantees the local copy handed to fn is zeroized on every exit path,
// including a panic unwinding through fn.
func WithMaster(m Master, fn func(raw []byte) error) (err error) {
	raw := m.Bytes()
	defer zero(raw)
	return fn(raw)
}

// WithChild scopes the acquisition of a Child's raw bytes to fn, and
// guarantees the local copy handed to fn is zeroized on every exit path,
// including a panic unwinding through fn.
func WithChild(c Child, fn func(raw []byte) error) (err error) {
	raw := c.Bytes()
	defer zero(raw)
	return fn(raw)
}
