package heap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"
)

// Validate runs the whole-heap consistency predicate: an implicit sweep
// over every block from the first real block to the epilogue, plus a
// sweep of each free list, plus the sentinel and live-allocation overlap
// checks. It returns nil when all of those checks pass, or the first failed
// check as an error otherwise. It does not compare a block's prev_alloc/
// prev_mini bits with the block to its left, and does not verify that every
// free block is on a list.
func (h *Heap) Validate() error {
	if !h.inited {
		return ErrNotInitialized
	}

	if err := h.checkSentinels(); err != nil {
		return err
	}
	if err := h.sweepImplicit(); err != nil {
		return err
	}
	if err := h.sweepFreeLists(); err != nil {
		return err
	}
	if a, b, found := h.registry.overlaps(); found {
		return errors.Wrapf(ErrCorruptHeap, "live allocations at offset %d and %d overlap", a, b)
	}

	return nil
}

func (h *Heap) checkSentinels() error {
	prologueFooter := h.p.ReadWord(h.p.HeapLo())
	size, alloc, _, _ := unpack(prologueFooter)
	if size != 0 || !alloc {
		return errors.Wrap(ErrCorruptHeap, "prologue is not a zero-size allocated sentinel")
	}

	epilogue := block(h.p.HeapHi() - WordSize + 1)
	eSize, eAlloc, _, _ := h.readHeader(epilogue)
	if eSize != 0 || !eAlloc {
		return errors.Wrap(ErrCorruptHeap, "epilogue is not a zero-size allocated sentinel")
	}
	return nil
}

// sweepImplicit walks the heap's implicit list (via next) from the first
// real block to the epilogue, checking bounds, alignment, size, the
// header==footer invariant for free non-mini blocks, and that no two
// adjacent blocks are both free.
func (h *Heap) sweepImplicit() error {
	lo, hi := h.p.HeapLo(), h.p.HeapHi()

	prevFree := false
	for b := h.start; ; {
		size, alloc, _, _ := h.readHeader(b)
		if size == 0 {
			// Reached the epilogue.
			break
		}

		if b.addr() < lo || b.addr() > hi {
			return errors.Wrapf(ErrCorruptHeap, "block at offset %d lies outside heap bounds", b.addr())
		}
		if payloadOf(b)%Align != 0 {
			return errors.Wrapf(ErrCorruptHeap, "block at offset %d has a misaligned payload", b.addr())
		}
		if size < MinBlockSize || size%Align != 0 {
			return errors.Wrapf(ErrCorruptHeap, "block at offset %d has invalid size %d", b.addr(), size)
		}

		if !alloc && size != MinBlockSize {
			footer := h.p.ReadWord(footerOf(b, size))
			header := h.p.ReadWord(b.addr())
			if footer != header {
				return errors.Wrapf(ErrCorruptHeap, "block at offset %d has mismatched header/footer", b.addr())
			}
		}

		if prevFree && !alloc {
			return errors.Wrapf(ErrCorruptHeap, "block at offset %d is adjacent to another free block", b.addr())
		}
		prevFree = !alloc

		b = h.next(b)
	}

	return nil
}

// sweepFreeLists walks every seg bucket and the mini-list, checking heap
// bounds, the doubly-linked next/prev consistency, and that each block
// sits in the bucket its size maps to.
func (h *Heap) sweepFreeLists() error {
	lo, hi := h.p.HeapLo(), h.p.HeapHi()

	for i := 0; i < NumClasses; i++ {
		for b := h.fl.buckets[i]; !b.isNil(); b = h.linkNext(b) {
			if b.addr() < lo || b.addr() > hi {
				return errors.Wrapf(ErrCorruptHeap, "free-list block at offset %d lies outside heap bounds", b.addr())
			}
			if next := h.linkNext(b); !next.isNil() {
				if h.linkPrev(next) != b {
					return errors.Wrapf(ErrCorruptHeap, "free-list block at offset %d has an inconsistent next.prev link", b.addr())
				}
			}
			if got := class(h.size(b)); got != i {
				return errors.Wrapf(ErrCorruptHeap, "block at offset %d sits in bucket %d but maps to bucket %d", b.addr(), i, got)
			}
		}
	}

	for b := h.fl.mini; !b.isNil(); b = h.miniNext(b) {
		if b.addr() < lo || b.addr() > hi {
			return errors.Wrapf(ErrCorruptHeap, "mini-list block at offset %d lies outside heap bounds", b.addr())
		}
		if h.size(b) != MinBlockSize {
			return errors.Wrapf(ErrCorruptHeap, "mini-list block at offset %d has size %d", b.addr(), h.size(b))
		}
	}

	return nil
}

// CheckHeap runs Validate and logs the offending line number on failure,
// matching mm_checkheap(line)'s diagnostic signature: line identifies the
// call site for anyone reading the log, not a location within this
// package.
func (h *Heap) CheckHeap(line int) bool {
	if err := h.Validate(); err != nil {
		h.logEvent("check_heap failed", slog.Int("line", line), slog.String("error", err.Error()))
		return false
	}
	return true
}
