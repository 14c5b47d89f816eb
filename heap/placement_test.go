package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdjustRoundsUpAndAddsHeader(t *testing.T) {
	require.Equal(t, uint64(MinBlockSize), adjust(1))
	require.Equal(t, uint64(MinBlockSize), adjust(8))
	require.Equal(t, uint64(32), adjust(17))
	require.Equal(t, uint64(48), adjust(32))
}

func TestAdjustIsAlwaysAligned(t *testing.T) {
	for req := 0; req < 512; req++ {
		require.Zero(t, adjust(req)%Align)
	}
}

func TestFindFitReturnsMiniListForMiniRequest(t *testing.T) {
	h := liveHeap(t)

	a := h.Allocate(8)
	// fence keeps a from merging with the free tail of the heap when freed.
	fence := h.Allocate(8)
	_ = fence
	h.Free(a)

	b, ok := h.findFit(MinBlockSize)
	require.True(t, ok)
	require.Equal(t, MinBlockSize, int(h.size(b)))
}

func TestFindFitSkipsTooSmallCandidates(t *testing.T) {
	h := liveHeap(t)

	small := h.Allocate(16)
	big := h.Allocate(512)
	h.Free(small)
	h.Free(big)

	b, ok := h.findFit(adjust(400))
	require.True(t, ok)
	require.GreaterOrEqual(t, h.size(b), adjust(400))
}

func TestSplitBlockLeavesNoSplitWhenRemainderTooSmall(t *testing.T) {
	h := liveHeap(t)

	ptr := h.Allocate(16)
	b := blockOf(ptr)
	size := h.size(b)

	_, split := h.splitBlock(b, size)
	require.False(t, split)
}

func TestExtendHeapGrowsByAtLeastRequestedAmount(t *testing.T) {
	h := liveHeap(t)

	before := h.HeapHi()
	b, ok := h.extendHeap(Chunk)
	require.True(t, ok)
	require.False(t, b.isNil())
	require.GreaterOrEqual(t, int64(h.HeapHi()-before), int64(Chunk))
}
