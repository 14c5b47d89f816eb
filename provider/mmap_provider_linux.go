//go:build linux

package provider

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// MmapProvider is a Provider backed by an anonymous mmap region, grown in
// place with mremap(MREMAP_MAYMOVE) as Sbrk is called. Addr remains a
// logical offset from the mapping's start, so a relocating mremap never
// invalidates an Addr handed out earlier; only MmapProvider's own base
// pointer changes.
type MmapProvider struct {
	region []byte

	FailAfter      int
	callsUntilFail int
}

// NewMmapProvider creates an MmapProvider with no committed region. Call
// Sbrk (indirectly, via heap.Initialize) before using it for reads or
// writes.
func NewMmapProvider() *MmapProvider {
	return &MmapProvider{FailAfter: -1, callsUntilFail: -1}
}

func (p *MmapProvider) HeapLo() Addr {
	return 0
}

func (p *MmapProvider) HeapHi() Addr {
	return Addr(len(p.region)) - 1
}

func (p *MmapProvider) Sbrk(delta int) (Addr, error) {
	if delta < 0 {
		return 0, ErrOutOfMemory
	}

	if p.FailAfter >= 0 && p.callsUntilFail < 0 {
		p.callsUntilFail = p.FailAfter
	}
	if p.callsUntilFail == 0 {
		return 0, ErrOutOfMemory
	}

	newLen := len(p.region) + delta
	var grown []byte
	var err error
	if p.region == nil {
		grown, err = unix.Mmap(-1, 0, newLen, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	} else {
		grown, err = unix.Mremap(p.region, newLen, unix.MREMAP_MAYMOVE)
	}
	if err != nil {
		return 0, ErrOutOfMemory
	}

	if p.callsUntilFail > 0 {
		p.callsUntilFail--
	}

	low := Addr(len(p.region))
	p.region = grown
	return low, nil
}

func (p *MmapProvider) ReadWord(at Addr) uint64 {
	return binary.LittleEndian.Uint64(p.region[at : at+8])
}

func (p *MmapProvider) WriteWord(at Addr, word uint64) {
	binary.LittleEndian.PutUint64(p.region[at:at+8], word)
}

func (p *MmapProvider) Memcpy(dst, src Addr, n int) {
	copy(p.region[dst:dst+Addr(n)], p.region[src:src+Addr(n)])
}

func (p *MmapProvider) Memset(dst Addr, b byte, n int) {
	region := p.region[dst : dst+Addr(n)]
	for i := range region {
		region[i] = b
	}
}

func (p *MmapProvider) Load(dst []byte, src Addr) {
	copy(dst, p.region[src:src+Addr(len(dst))])
}

func (p *MmapProvider) Store(dst Addr, src []byte) {
	copy(p.region[dst:dst+Addr(len(src))], src)
}

// Close unmaps the region. The provider must not be used afterward.
func (p *MmapProvider) Close() error {
	if p.region == nil {
		return nil
	}
	err := unix.Munmap(p.region)
	p.region = nil
	return err
}
