package heap

import "github.com/segalloc/segalloc/provider"

// block identifies a block by the address of its header word. It is a thin
// typed wrapper over provider.Addr so the engine's signatures read in terms
// of blocks rather than raw offsets.
type block provider.Addr

func (b block) addr() provider.Addr { return provider.Addr(b) }

func (h *Heap) readHeader(b block) (size uint64, alloc, prevAlloc, prevMini bool) {
	return unpack(h.p.ReadWord(b.addr()))
}

func (h *Heap) size(b block) uint64 {
	return extractSize(h.p.ReadWord(b.addr()))
}

func (h *Heap) isAlloc(b block) bool {
	return extractAlloc(h.p.ReadWord(b.addr()))
}

func (h *Heap) isMini(b block) bool {
	return h.size(b) == MinBlockSize
}

// next returns the address of the block immediately to the right of b.
// Undefined (and unchecked) when b is the epilogue.
func (h *Heap) next(b block) block {
	return block(b.addr() + provider.Addr(h.size(b)))
}

// prev returns the block immediately to the left of b, and false if b sits
// directly on top of the prologue (there is no previous real block).
func (h *Heap) prev(b block) (block, bool) {
	_, _, _, prevMini := h.readHeader(b)
	if prevMini {
		return block(b.addr() - MinBlockSize), true
	}

	footer := b.addr() - WordSize
	size := extractSize(h.p.ReadWord(footer))
	if size == 0 {
		return nilBlock, false
	}
	return block(footer - provider.Addr(size) + WordSize), true
}

// payloadOf returns the address of b's payload, which begins 8 bytes after
// the header and is always 16-aligned.
func payloadOf(b block) provider.Addr {
	return b.addr() + WordSize
}

// blockOf recovers a block from a payload pointer returned by Allocate.
func blockOf(p provider.Addr) block {
	return block(p - WordSize)
}

// footerOf returns the address of b's footer. Only meaningful for free,
// non-mini blocks.
func footerOf(b block, size uint64) provider.Addr {
	return b.addr() + provider.Addr(size) - WordSize
}

// writeBlock writes b's header and, for free non-mini blocks, an identical
// footer. It is the only function that writes a boundary word (setPrevFlags
// and the coalescer's neighbor updates go through it too), so every write
// is an explicit, full set of both flags -- never an OR-in of a single bit.
func (h *Heap) writeBlock(b block, size uint64, alloc, prevAlloc, prevMini bool) {
	w := pack(size, alloc, prevAlloc, prevMini)
	h.p.WriteWord(b.addr(), w)
	if !alloc && size != MinBlockSize {
		h.p.WriteWord(footerOf(b, size), w)
	}
}

// setPrevFlags rewrites only the prev_alloc/prev_mini bits of b, preserving
// b's own size and alloc bit, and keeping header/footer in sync for free
// non-mini blocks. It is always a full write of both flags together.
func (h *Heap) setPrevFlags(b block, prevAlloc, prevMini bool) {
	size, alloc, _, _ := h.readHeader(b)
	h.writeBlock(b, size, alloc, prevAlloc, prevMini)
}

// free-block link words. A free non-mini block stores prev/next pointers
// immediately after its header; a free mini block stores only a next
// pointer there.
func (h *Heap) linkPrev(b block) block {
	return block(h.p.ReadWord(b.addr() + WordSize))
}

func (h *Heap) setLinkPrev(b block, v block) {
	h.p.WriteWord(b.addr()+WordSize, uint64(v.addr()))
}

func (h *Heap) linkNext(b block) block {
	return block(h.p.ReadWord(b.addr() + 2*WordSize))
}

func (h *Heap) setLinkNext(b block, v block) {
	h.p.WriteWord(b.addr()+2*WordSize, uint64(v.addr()))
}

// mini blocks only have room for a single next pointer, stored right after
// the header.
func (h *Heap) miniNext(b block) block {
	return block(h.p.ReadWord(b.addr() + WordSize))
}

func (h *Heap) setMiniNext(b block, v block) {
	h.p.WriteWord(b.addr()+WordSize, uint64(v.addr()))
}

// nilBlock is the sentinel "no block" value stored in link words. It must
// not collide with a legitimate address, so it cannot be 0 (the prologue
// footer lives at the provider's address 0); -1 never names a real block.
const nilBlock block = -1

func (b block) isNil() bool { return b == nilBlock }
