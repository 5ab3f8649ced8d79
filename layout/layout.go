// SPDX-License-Identifier: MIT

package layout

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/yama/assert"
)

// Size returns the size of T in bytes.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Bytes returns the memory of *p as a byte slice aliasing it. Writes
// through the slice change *p.
func Bytes[T any](p *T) []byte {
	assert.Critical(p != nil, "layout.Bytes", "nil pointer")
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), Size[T]())
}

// SliceBytes returns the memory backing s as a byte slice aliasing it.
// A nil or empty s gives nil.
func SliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*Size[E]())
}

// FromBytes copies the first Size[T]() bytes of b into a new T.
// A short buffer is a critical violation.
func FromBytes[T any](b []byte) T {
	var v T
	assert.Critical(len(b) >= Size[T](), "layout.FromBytes", "buffer is shorter than the value")
	copy(Bytes(&v), b)
	return v
}

// Digest returns the xxhash of the bytes of *p.
func Digest[T any](p *T) uint64 {
	return xxhash.Sum64(Bytes(p))
}

// SliceDigest returns the xxhash of the bytes backing s.
func SliceDigest[E any](s []E) uint64 {
	return xxhash.Sum64(SliceBytes(s))
}

// Digester accumulates the bytes of several values into one xxhash.
// The zero value is not usable; call NewDigester.
type Digester struct {
	h *xxhash.Digest
}

// NewDigester returns an empty Digester.
func NewDigester() *Digester {
	return &Digester{h: xxhash.New()}
}

// Add hashes the bytes of *p and returns d.
func Add[T any](d *Digester, p *T) *Digester {
	_, _ = d.h.Write(Bytes(p))
	return d
}

// Sum64 returns the hash of everything added so far.
func (d *Digester) Sum64() uint64 {
	return d.h.Sum64()
}
