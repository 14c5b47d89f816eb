package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/provider"
)

// harness builds a bare Heap (no sentinels, no extendHeap) with a
// SliceProvider sized large enough to hold synthetic blocks, for testing
// freelist/coalesce/placement internals in isolation from Allocate/Free.
func harness(t *testing.T, size int) (*Heap, *provider.SliceProvider) {
	t.Helper()
	p := provider.NewSliceProvider()
	if _, err := p.Sbrk(size); err != nil {
		t.Fatal(err)
	}
	h := &Heap{p: p, fl: newFreeLists(), registry: newRegistry()}
	return h, p
}

func TestInsertAndRemoveFreeSegBucket(t *testing.T) {
	h, _ := harness(t, 256)

	b := block(0)
	h.writeBlock(b, 64, false, true, false)
	h.insertFree(b)

	i := class(64)
	require.Equal(t, b, h.fl.buckets[i])

	h.removeFree(b)
	require.True(t, h.fl.buckets[i].isNil())
}

func TestInsertAndRemoveFreeMiniList(t *testing.T) {
	h, _ := harness(t, 256)

	b := block(0)
	h.writeBlock(b, MinBlockSize, false, true, false)
	h.insertFree(b)

	require.Equal(t, b, h.fl.mini)

	h.removeFree(b)
	require.True(t, h.fl.mini.isNil())
}

func TestRemoveFreeMiddleOfSegBucket(t *testing.T) {
	h, _ := harness(t, 256)

	a := block(0)
	b := block(64)
	c := block(128)
	for _, blk := range []block{a, b, c} {
		h.writeBlock(blk, 64, false, true, false)
	}

	// insertFree pushes to the head, so after inserting a, b, c in order
	// the bucket list is c -> b -> a.
	h.insertFree(a)
	h.insertFree(b)
	h.insertFree(c)

	h.removeFree(b)

	i := class(64)
	require.Equal(t, c, h.fl.buckets[i])
	require.Equal(t, a, h.linkNext(c))
	require.Equal(t, c, h.linkPrev(a))
}

func TestRemoveMiniFromMiddleOfList(t *testing.T) {
	h, _ := harness(t, 256)

	a := block(0)
	b := block(16)
	c := block(32)
	for _, blk := range []block{a, b, c} {
		h.writeBlock(blk, MinBlockSize, false, true, false)
	}

	h.insertFree(a)
	h.insertFree(b)
	h.insertFree(c)

	h.removeMini(b)

	require.Equal(t, c, h.fl.mini)
	require.Equal(t, a, h.miniNext(c))
}
