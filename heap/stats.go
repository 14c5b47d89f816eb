package heap

import "math"

// Statistics is a summary roll-up over a region of the heap: how many
// blocks it holds, how many of those are live allocations, and the byte
// totals behind each count. Grounded on memutils.Statistics.
type Statistics struct {
	BlockCount      int
	AllocationCount int
	BlockBytes      int
	AllocationBytes int
}

func (s *Statistics) clear() {
	*s = Statistics{}
}

func (s *Statistics) addBlock(size int, alloc bool) {
	s.BlockCount++
	s.BlockBytes += size
	if alloc {
		s.AllocationCount++
		s.AllocationBytes += size
	}
}

// DetailedStatistics additionally tracks the min/max size seen among
// allocations and among free (unused) ranges, giving a sense of
// fragmentation that the plain counts in Statistics can't.
type DetailedStatistics struct {
	Statistics
	UnusedRangeCount   int
	AllocationSizeMin  int
	AllocationSizeMax  int
	UnusedRangeSizeMin int
	UnusedRangeSizeMax int
}

func (s *DetailedStatistics) clear() {
	s.Statistics.clear()
	s.UnusedRangeCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
	s.UnusedRangeSizeMin = math.MaxInt
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) addUnusedRange(size int) {
	s.UnusedRangeCount++
	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}
	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) addAllocation(size int) {
	s.AllocationCount++
	s.AllocationBytes += size
	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}
	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

// Stats walks the implicit block list once and returns a coarse summary:
// total blocks, live allocations, and the bytes behind each.
func (h *Heap) Stats() Statistics {
	var s Statistics
	s.clear()

	if !h.inited {
		return s
	}

	for b := h.start; ; {
		size, alloc, _, _ := h.readHeader(b)
		if size == 0 {
			break
		}
		s.addBlock(int(size), alloc)
		b = h.next(b)
	}

	return s
}

// DetailedStats walks the implicit block list and additionally tracks
// allocation and free-range size extremes, the same sweep CheckHeap's
// sweepImplicit performs but folded into statistics instead of invariant
// checks.
func (h *Heap) DetailedStats() DetailedStatistics {
	var s DetailedStatistics
	s.clear()

	if !h.inited {
		return s
	}

	for b := h.start; ; {
		size, alloc, _, _ := h.readHeader(b)
		if size == 0 {
			break
		}
		// addAllocation counts allocations itself, so only the block
		// totals are added here.
		s.BlockCount++
		s.BlockBytes += int(size)
		if alloc {
			s.addAllocation(int(size))
		} else {
			s.addUnusedRange(int(size))
		}
		b = h.next(b)
	}

	return s
}
