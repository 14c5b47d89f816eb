package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassesOnFreshHeap(t *testing.T) {
	h := liveHeap(t)
	require.NoError(t, h.Validate())
}

func TestValidateBeforeInitializeReportsNotInitialized(t *testing.T) {
	h := New(nil)
	require.ErrorIs(t, h.Validate(), ErrNotInitialized)
}

func TestValidateDetectsCorruptedHeaderFooterPair(t *testing.T) {
	h := liveHeap(t)

	ptr := h.Allocate(64)
	b := blockOf(ptr)
	h.Free(ptr)

	// Corrupt the footer of the now-free block without going through
	// writeBlock, to desynchronize header and footer.
	size := h.size(b)
	h.p.WriteWord(footerOf(b, size), pack(size+16, false, true, false))

	require.Error(t, h.Validate())
}

func TestCheckHeapLogsAndReturnsFalseOnCorruption(t *testing.T) {
	h := liveHeap(t)

	ptr := h.Allocate(64)
	b := blockOf(ptr)
	h.Free(ptr)

	size := h.size(b)
	h.p.WriteWord(footerOf(b, size), pack(size+16, false, true, false))

	require.False(t, h.CheckHeap(0))
}
