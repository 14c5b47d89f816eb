//go:build !segalloc_debug

package heap

// debugCheck no-ops outside the segalloc_debug build tag.
func (h *Heap) debugCheck() {}
