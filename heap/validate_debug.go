//go:build segalloc_debug

package heap

import "runtime"

// debugCheck runs the invariant checker at API boundaries when the
// segalloc_debug build tag is present, panicking on the first violation --
// the Go rendition of mm.c's dbg_requires(mm_checkheap(__LINE__)) /
// dbg_ensures(mm_checkheap(__LINE__)). The line number is the caller's,
// recovered with runtime.Caller since Go has no __LINE__ macro.
func (h *Heap) debugCheck() {
	_, _, line, _ := runtime.Caller(1)
	if !h.CheckHeap(line) {
		panic(ErrCorruptHeap)
	}
}
