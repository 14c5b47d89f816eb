package heap

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Dump renders the whole heap -- every block in address order, its size,
// its allocated/free state, and a per-class free-list summary -- as a JSON
// document. Grounded on memoryBlockList.PrintDetailedMap and
// TLSFBlockMetadata.PrintDetailedMapHeader: same walk, same object shape,
// adapted from a suballocator's block-list view to segalloc's single
// implicit list.
func (h *Heap) Dump() ([]byte, error) {
	w := jwriter.NewWriter()
	obj := w.Object()

	stats := h.DetailedStats()
	obj.Name("TotalBytes").Int(stats.BlockBytes)
	obj.Name("UnusedBytes").Int(stats.BlockBytes - stats.AllocationBytes)
	obj.Name("Allocations").Int(stats.AllocationCount)
	obj.Name("UnusedRanges").Int(stats.UnusedRangeCount)

	h.dumpBlocks(obj)
	h.dumpFreeLists(obj)

	obj.End()

	return w.Bytes(), w.Error()
}

func (h *Heap) dumpBlocks(obj jwriter.ObjectState) {
	arr := obj.Name("Blocks").Array()
	defer arr.End()

	if !h.inited {
		return
	}

	for b := h.start; ; {
		size, alloc, _, _ := h.readHeader(b)
		if size == 0 {
			break
		}

		blockObj := arr.Object()
		blockObj.Name("Offset").Int(int(b.addr()))
		blockObj.Name("Size").Int(int(size))
		blockObj.Name("State").String(blockState(alloc))
		blockObj.End()

		b = h.next(b)
	}
}

func (h *Heap) dumpFreeLists(obj jwriter.ObjectState) {
	arr := obj.Name("FreeClasses").Array()
	defer arr.End()

	for i := 0; i < NumClasses; i++ {
		count := 0
		for b := h.fl.buckets[i]; !b.isNil(); b = h.linkNext(b) {
			count++
		}
		if count == 0 {
			continue
		}

		classObj := arr.Object()
		classObj.Name("Class").Int(i)
		classObj.Name("Count").Int(count)
		classObj.End()
	}

	miniCount := 0
	for b := h.fl.mini; !b.isNil(); b = h.miniNext(b) {
		miniCount++
	}
	if miniCount > 0 {
		classObj := arr.Object()
		classObj.Name("Class").String("mini")
		classObj.Name("Count").Int(miniCount)
		classObj.End()
	}
}

func blockState(alloc bool) string {
	if alloc {
		return "allocated"
	}
	return "free"
}
