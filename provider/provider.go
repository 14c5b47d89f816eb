// Package provider supplies the low-level, contiguous-memory collaborator
// that the heap engine builds on: heap bounds, sbrk-style growth, and raw
// byte operations. It deliberately knows nothing about blocks, free lists,
// or allocation policy.
package provider

import "github.com/pkg/errors"

// Addr is a logical byte offset into the provider's committed region, with
// 0 at the region's low end. It stands in for a raw pointer: the region may
// be backed by a relocatable []byte or a remapped mmap region, so absolute
// process addresses are never exposed across this interface.
type Addr int64

// ErrOutOfMemory is returned by Sbrk when the provider cannot extend its
// region any further.
var ErrOutOfMemory = errors.New("provider: out of memory")

// Provider is the contiguous-memory collaborator consumed by the heap
// engine. It never shrinks: Sbrk only ever appends at the high end.
type Provider interface {
	// HeapLo returns the inclusive low bound of the committed region.
	HeapLo() Addr
	// HeapHi returns the inclusive high bound of the committed region.
	// Before the first successful Sbrk call, HeapHi < HeapLo.
	HeapHi() Addr

	// Sbrk extends the region by delta bytes and returns the low address
	// of the newly committed range, or ErrOutOfMemory if it cannot.
	Sbrk(delta int) (Addr, error)

	// ReadWord and WriteWord access a single 8-byte boundary word. They are
	// the word-granular counterpart of Memcpy/Memset: nearly every access
	// the engine makes is to a header, footer, or link word, so the engine
	// never deals in raw bytes for its own bookkeeping.
	ReadWord(at Addr) uint64
	WriteWord(at Addr, word uint64)

	// Memcpy and Memset operate on opaque payload bytes on behalf of the
	// public API (Reallocate, ZeroedAllocate); the engine itself never
	// inspects payload contents.
	Memcpy(dst, src Addr, n int)
	Memset(dst Addr, b byte, n int)

	// Load and Store move bytes between the heap region and an ordinary Go
	// slice, standing in for a test driver that pokes at payload memory
	// through its own pointer rather than one returned by this package.
	Load(dst []byte, src Addr)
	Store(dst Addr, src []byte)
}
