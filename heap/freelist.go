package heap

// freeLists holds the 14 segregated bucket heads plus the mini-list head.
// These are process-wide bookkeeping, not stored in the heap bytes
// themselves -- the equivalent of mm.c's static seg_list/mini_list globals.
type freeLists struct {
	buckets [NumClasses]block
	mini    block
}

func newFreeLists() freeLists {
	fl := freeLists{mini: nilBlock}
	for i := range fl.buckets {
		fl.buckets[i] = nilBlock
	}
	return fl
}

// insertFree pushes b onto the head of its list: the mini-list if b is
// exactly MinBlockSize, else the seg bucket for b's class.
func (h *Heap) insertFree(b block) {
	if h.isMini(b) {
		h.setMiniNext(b, h.fl.mini)
		h.fl.mini = b
		return
	}

	i := class(h.size(b))
	head := h.fl.buckets[i]
	h.setLinkPrev(b, nilBlock)
	h.setLinkNext(b, head)
	if !head.isNil() {
		h.setLinkPrev(head, b)
	}
	h.fl.buckets[i] = b
}

// removeFree unlinks b from whichever list it is currently on. Mini removal
// is a linear scan of the (typically short) singly-linked mini-list;
// removal from a seg bucket is O(1) via the generic doubly-linked unlink
// below, which folds the head/middle/tail cases mm.c's remove_free kept
// separate (spec.md's resolved Open Question).
func (h *Heap) removeFree(b block) {
	if h.isMini(b) {
		h.removeMini(b)
		return
	}

	prev := h.linkPrev(b)
	next := h.linkNext(b)

	if !next.isNil() {
		h.setLinkPrev(next, prev)
	}
	if !prev.isNil() {
		h.setLinkNext(prev, next)
	} else {
		h.fl.buckets[class(h.size(b))] = next
	}
}

func (h *Heap) removeMini(b block) {
	if h.fl.mini == b {
		h.fl.mini = h.miniNext(b)
		return
	}

	for curr := h.fl.mini; !curr.isNil(); curr = h.miniNext(curr) {
		if next := h.miniNext(curr); next == b {
			h.setMiniNext(curr, h.miniNext(b))
			return
		}
	}
}
