package heap

import "golang.org/x/exp/slog"

// SetLogger attaches a structured logger that receives one debug-level
// record per allocation and per free, plus one when CheckHeap fails; heap
// extensions are not logged. A nil logger (the default)
// disables this entirely -- mirroring DebugLogAllAllocations's opt-in
// shape from the teacher's metadata package, logging is something callers
// turn on, never something the engine does unconditionally.
func (h *Heap) SetLogger(logger *slog.Logger) {
	h.logger = logger
}

func (h *Heap) logEvent(msg string, args ...any) {
	if h.logger == nil {
		return
	}
	h.logger.Debug(msg, args...)
}
