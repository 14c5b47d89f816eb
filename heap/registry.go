package heap

import (
	"github.com/dolthub/swiss"

	"github.com/segalloc/segalloc/provider"
)

// registry tracks the offset and size of every currently-live allocation,
// independent of the in-band header bits. It exists purely as a second
// source of truth for Validate's overlap check (testable property #2); the
// statistics walk the block list instead -- mirrors TLSFBlockMetadata's
// handleKey swiss.Map, which
// serves the same "look up a live block by an opaque key" role there.
type registry struct {
	live *swiss.Map[provider.Addr, uint64]
}

func newRegistry() *registry {
	return &registry{live: swiss.NewMap[provider.Addr, uint64](16)}
}

func (r *registry) add(offset provider.Addr, size uint64) {
	r.live.Put(offset, size)
}

func (r *registry) remove(offset provider.Addr) {
	r.live.Delete(offset)
}

func (r *registry) count() int {
	return int(r.live.Count())
}

// overlaps reports the first pair of live ranges found to overlap, if any.
func (r *registry) overlaps() (a, b provider.Addr, found bool) {
	type span struct {
		off, end provider.Addr
	}
	spans := make([]span, 0, r.live.Count())
	r.live.Iter(func(off provider.Addr, size uint64) bool {
		spans = append(spans, span{off, off + provider.Addr(size)})
		return false
	})

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].off < spans[j].end && spans[j].off < spans[i].end {
				return spans[i].off, spans[j].off, true
			}
		}
	}
	return 0, 0, false
}
