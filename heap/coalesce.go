package heap

// coalesce merges a just-freed (or just-extended) block with any
// immediately-adjacent free neighbors, maintaining the "no two adjacent
// free blocks" invariant, and returns the resulting block (which is always
// on its free list on return). It implements spec.md's four boundary
// cases verbatim.
func (h *Heap) coalesce(b block) block {
	size, _, prevAlloc, _ := h.readHeader(b)

	var p block
	if !prevAlloc {
		p, _ = h.prev(b)
	}

	n := h.next(b)
	nSize, nAlloc, _, _ := h.readHeader(n)

	switch {
	case prevAlloc && nAlloc:
		// Case 1: both neighbors allocated. b keeps its own flags; the
		// right neighbor's prev_alloc/prev_mini are set to reflect b.
		h.setPrevFlags(n, false, size == MinBlockSize)
		h.insertFree(b)
		return b

	case !prevAlloc && nAlloc:
		// Case 2: left neighbor free, right allocated. Absorb p.
		h.removeFree(p)
		_, _, pPrevAlloc, pPrevMini := h.readHeader(p)
		total := h.size(p) + size
		h.writeBlock(p, total, false, pPrevAlloc, pPrevMini)
		h.setPrevFlags(n, false, false)
		h.insertFree(p)
		return p

	case prevAlloc && !nAlloc:
		// Case 3: left allocated, right free. Absorb n. n's own header
		// word is untouched by the write to b below, and nn := h.next(n)
		// is read before that write anyway, so it locates the real
		// next-next block correctly.
		h.removeFree(n)
		_, _, _, prevMini := h.readHeader(b)
		total := size + nSize
		nn := h.next(n)
		h.writeBlock(b, total, false, true, prevMini)

		nnSize, nnAlloc, _, _ := h.readHeader(nn)
		h.writeBlock(nn, nnSize, nnAlloc, false, false)

		h.insertFree(b)
		return b

	default:
		// Case 4: both neighbors free. Absorb both.
		h.removeFree(p)
		h.removeFree(n)
		_, _, pPrevAlloc, pPrevMini := h.readHeader(p)
		total := h.size(p) + size + nSize
		h.writeBlock(p, total, false, pPrevAlloc, pPrevMini)

		nn := h.next(n)
		nnSize, nnAlloc, _, _ := h.readHeader(nn)
		h.writeBlock(nn, nnSize, nnAlloc, false, false)

		h.insertFree(p)
		return p
	}
}
