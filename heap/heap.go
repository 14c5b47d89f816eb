package heap

import (
	"golang.org/x/exp/slog"

	"github.com/segalloc/segalloc/provider"
)

// Ptr is a payload address returned by Allocate and consumed by Free,
// Reallocate, and the provider's Load/Store. It is the Go rendition of a
// `void *` returned from malloc: a non-owning handle into memory the Heap
// itself owns.
type Ptr = provider.Addr

// NilPtr is the sentinel "no payload" value, standing in for a C NULL
// returned from allocate or accepted by free/reallocate.
const NilPtr Ptr = -1

// Heap is the block-management engine: it owns no memory itself, instead
// issuing and interpreting boundary words within whatever region its
// provider.Provider commits. A Heap is single-threaded/cooperative; callers
// must serialize their own concurrent use, same as the C allocator this
// package is a Go rendition of.
type Heap struct {
	p provider.Provider

	inited bool
	start  block // address of the first real (non-sentinel) block

	fl freeLists

	registry *registry
	logger   *slog.Logger

	allocCount int
	freeBytes  int
}

// New creates a Heap over the given provider. Call Initialize before the
// first Allocate/Free/Reallocate/ZeroedAllocate.
func New(p provider.Provider) *Heap {
	return &Heap{
		p:        p,
		fl:       newFreeLists(),
		registry: newRegistry(),
	}
}

// Initialize idempotently lays down the prologue/epilogue sentinels and
// extends the heap by one Chunk-sized free block. It returns false only if
// the underlying Sbrk fails.
func (h *Heap) Initialize() bool {
	if h.inited {
		return true
	}

	lowAddr, err := h.p.Sbrk(2 * WordSize)
	if err != nil {
		return false
	}

	prologue := block(lowAddr)
	epilogueSlot := block(lowAddr + WordSize)
	h.writeBlock(prologue, 0, true, false, false)
	h.writeBlock(epilogueSlot, 0, true, true, false)

	h.start = epilogueSlot

	if _, ok := h.extendHeap(Chunk); !ok {
		return false
	}

	h.inited = true
	return true
}

// Allocate reserves a region of at least size bytes and returns its
// payload address, or NilPtr if size is 0 or the request cannot be
// satisfied (including when the heap cannot be extended further).
func (h *Heap) Allocate(size int) Ptr {
	h.debugCheck()
	defer h.debugCheck()

	if !h.inited {
		if !h.Initialize() {
			return NilPtr
		}
	}

	if size == 0 {
		return NilPtr
	}

	asize := adjust(size)

	b, ok := h.findFit(asize)
	if !ok {
		extendSize := asize
		if extendSize < Chunk {
			extendSize = Chunk
		}
		b, ok = h.extendHeap(extendSize)
		if !ok {
			return NilPtr
		}
	}

	h.removeFree(b)

	blockSize, _, prevAlloc, prevMini := h.readHeader(b)
	h.writeBlock(b, blockSize, true, prevAlloc, prevMini)

	next := h.next(b)
	h.setPrevFlags(next, true, blockSize == MinBlockSize)

	if remainder, split := h.splitBlock(b, asize); split {
		h.coalesce(remainder)
	}

	h.allocCount++
	h.registry.add(b.addr(), h.size(b))
	h.logEvent("allocate", slog.Int("size", size), slog.Int64("offset", int64(b.addr())))

	return payloadOf(b)
}

// Free releases the block at payload address p, coalescing it with any
// free neighbors. Freeing NilPtr is a no-op.
func (h *Heap) Free(p Ptr) {
	h.debugCheck()
	defer h.debugCheck()

	if p == NilPtr {
		return
	}

	b := blockOf(p)

	size, _, prevAlloc, prevMini := h.readHeader(b)
	h.writeBlock(b, size, false, prevAlloc, prevMini)

	next := h.next(b)
	h.setPrevFlags(next, false, size == MinBlockSize)

	h.coalesce(b)

	h.allocCount--
	h.registry.remove(b.addr())
	h.logEvent("free", slog.Int64("offset", int64(b.addr())))
}

// Reallocate resizes the allocation at p to hold at least size bytes. A nil
// p behaves as Allocate; a zero size behaves as Free and returns NilPtr.
// On success the first min(size, old payload size) bytes are preserved; on
// failure NilPtr is returned and the original allocation is left intact.
func (h *Heap) Reallocate(p Ptr, size int) Ptr {
	h.debugCheck()
	defer h.debugCheck()

	if size == 0 {
		h.Free(p)
		return NilPtr
	}
	if p == NilPtr {
		return h.Allocate(size)
	}

	oldBlock := blockOf(p)
	oldPayloadSize := int(h.size(oldBlock)) - WordSize

	newPtr := h.Allocate(size)
	if newPtr == NilPtr {
		return NilPtr
	}

	copySize := oldPayloadSize
	if size < copySize {
		copySize = size
	}
	h.p.Memcpy(newPtr, p, copySize)

	h.Free(p)

	return newPtr
}

// ZeroedAllocate allocates space for n elements of sz bytes each, zeroed,
// returning NilPtr if n is 0 or n*sz overflows.
func (h *Heap) ZeroedAllocate(n, sz int) Ptr {
	if n == 0 {
		return NilPtr
	}

	total := n * sz
	if sz != 0 && total/sz != n {
		return NilPtr
	}

	p := h.Allocate(total)
	if p == NilPtr {
		return NilPtr
	}

	h.p.Memset(p, 0, total)
	return p
}

// HeapLo and HeapHi expose the provider's current committed bounds, for
// callers validating that every returned Ptr falls within them.
func (h *Heap) HeapLo() provider.Addr { return h.p.HeapLo() }
func (h *Heap) HeapHi() provider.Addr { return h.p.HeapHi() }
