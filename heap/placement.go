package heap

func roundUp(size, n uint64) uint64 {
	return n * ((size + n - 1) / n)
}

// adjust normalizes a user request size into an aligned block size
// (header + payload, rounded up to Align), with a floor of MinBlockSize.
func adjust(req int) uint64 {
	size := roundUp(uint64(req)+WordSize, Align)
	if size < MinBlockSize {
		size = MinBlockSize
	}
	return size
}

// findFit implements the bounded best-fit search: within the first bucket
// (starting at class(asize)) that contains a fitting block, it walks the
// LIFO list tracking the smallest fit so far, and stops as soon as a
// candidate is larger than the current best -- a deliberate near-best-fit
// heuristic, not a full scan. asize == MinBlockSize is satisfied directly
// from the mini-list instead.
func (h *Heap) findFit(asize uint64) (block, bool) {
	if asize == MinBlockSize && !h.fl.mini.isNil() {
		return h.fl.mini, true
	}

	for i := class(asize); i < NumClasses; i++ {
		var best block = nilBlock
		var bestSize uint64

		for b := h.fl.buckets[i]; !b.isNil(); b = h.linkNext(b) {
			s := h.size(b)
			if s < asize {
				continue
			}
			if best.isNil() {
				best = b
				bestSize = s
				continue
			}
			if s < bestSize {
				best = b
				bestSize = s
				continue
			}
			// The first candidate larger than the best found so far ends
			// the scan; an equal-sized one does not.
			if s > bestSize {
				break
			}
		}

		if !best.isNil() {
			return best, true
		}
	}

	return nilBlock, false
}

// extendHeap grows the heap by n bytes (rounded up to Align), turning the
// newly committed region into a free block that replaces the old epilogue,
// writes a fresh epilogue at the new high end, and immediately coalesces
// with the previous block if it was free.
func (h *Heap) extendHeap(n uint64) (block, bool) {
	size := roundUp(n, Align)

	lowAddr, err := h.p.Sbrk(int(size))
	if err != nil {
		return nilBlock, false
	}

	b := block(lowAddr - WordSize)
	_, _, prevAlloc, prevMini := h.readHeader(b)
	h.writeBlock(b, size, false, prevAlloc, prevMini)

	next := h.next(b)
	h.writeEpilogue(next, h.isAlloc(b), h.isMini(b))

	return h.coalesce(b), true
}

// writeEpilogue writes the zero-size, always-allocated sentinel at the
// heap's new high end.
func (h *Heap) writeEpilogue(b block, prevAlloc, prevMini bool) {
	h.writeBlock(b, 0, true, prevAlloc, prevMini)
}

// splitBlock carves an asize-byte allocated block out of b (which must
// currently be allocated with size >= asize), returning the remainder as a
// new free block if there's room for one, or false if the remainder would
// be smaller than MinBlockSize.
func (h *Heap) splitBlock(b block, asize uint64) (block, bool) {
	blockSize, _, prevAlloc, prevMini := h.readHeader(b)

	if blockSize-asize < MinBlockSize {
		return nilBlock, false
	}

	h.writeBlock(b, asize, true, prevAlloc, prevMini)

	remainder := h.next(b)
	h.writeBlock(remainder, blockSize-asize, false, true, asize == MinBlockSize)

	nn := h.next(remainder)
	h.setPrevFlags(nn, false, false)

	return remainder, true
}
