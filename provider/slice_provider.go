package provider

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// SliceProvider is the default, portable Provider: the heap region is a
// plain growable []byte, grown with append. It never returns a relocated
// Addr to callers because Addr is a logical offset, not a pointer into the
// Go heap, so growth never invalidates a previously handed-out Addr.
type SliceProvider struct {
	data []byte

	// FailAfter, when non-negative, lets the next FailAfter calls to Sbrk
	// succeed and makes every call after them fail regardless of available
	// capacity (0 fails the very next call). It exists to let tests
	// and trace replays deterministically exercise the out-of-memory path
	// (mirroring how mm.c's test driver could force mem_sbrk to fail).
	// A negative value (the default) disables the injection.
	FailAfter int

	callsUntilFail int
}

// NewSliceProvider creates an empty SliceProvider. Call Sbrk (indirectly,
// via heap.Initialize) before using it for reads or writes.
func NewSliceProvider() *SliceProvider {
	return &SliceProvider{FailAfter: -1, callsUntilFail: -1}
}

func (p *SliceProvider) HeapLo() Addr {
	return 0
}

func (p *SliceProvider) HeapHi() Addr {
	return Addr(len(p.data)) - 1
}

func (p *SliceProvider) Sbrk(delta int) (Addr, error) {
	if delta < 0 {
		return 0, errors.WithMessage(ErrOutOfMemory, "sbrk: negative delta")
	}

	if p.FailAfter >= 0 && p.callsUntilFail < 0 {
		p.callsUntilFail = p.FailAfter
	}
	if p.callsUntilFail == 0 {
		return 0, ErrOutOfMemory
	}
	if p.callsUntilFail > 0 {
		p.callsUntilFail--
	}

	low := Addr(len(p.data))
	p.data = append(p.data, make([]byte, delta)...)
	return low, nil
}

func (p *SliceProvider) ReadWord(at Addr) uint64 {
	return binary.LittleEndian.Uint64(p.data[at : at+8])
}

func (p *SliceProvider) WriteWord(at Addr, word uint64) {
	binary.LittleEndian.PutUint64(p.data[at:at+8], word)
}

func (p *SliceProvider) Memcpy(dst, src Addr, n int) {
	copy(p.data[dst:dst+Addr(n)], p.data[src:src+Addr(n)])
}

func (p *SliceProvider) Memset(dst Addr, b byte, n int) {
	region := p.data[dst : dst+Addr(n)]
	for i := range region {
		region[i] = b
	}
}

func (p *SliceProvider) Load(dst []byte, src Addr) {
	copy(dst, p.data[src:src+Addr(len(dst))])
}

func (p *SliceProvider) Store(dst Addr, src []byte) {
	copy(p.data[dst:dst+Addr(len(src))], src)
}

// Close is a no-op; SliceProvider holds no external resources. It exists so
// SliceProvider can stand in for MmapProvider on platforms without mremap.
func (p *SliceProvider) Close() error {
	return nil
}
