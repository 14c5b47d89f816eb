package trace

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/segalloc/segalloc/heap"
	"github.com/segalloc/segalloc/provider"
)

// Result summarizes a completed replay: step count, peak/final utilization,
// and the first invariant violation encountered, if CheckEveryStep caught
// one.
type Result struct {
	Steps       int
	PeakBytes   int
	FinalStats  heap.Statistics
	Violation   error
	ViolationAt int
}

// Runner replays a parsed Trace against a fresh heap.Heap, translating
// trace ids (stable across alloc/realloc/free) into the Ptr each op call
// returned.
type Runner struct {
	Config Config
	Logger *slog.Logger

	runID string
}

// NewRunner creates a Runner with a fresh run id, attached as a slog field
// on every line the Runner itself logs so concurrent replays in the same
// process (or the same log stream) can be told apart. The heap's own
// allocate/free records go to the same logger without the run id.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	return &Runner{Config: cfg, Logger: logger, runID: uuid.NewString()}
}

func (r *Runner) newProvider() (provider.Provider, error) {
	switch r.Config.Provider {
	case "", "slice":
		p := provider.NewSliceProvider()
		p.FailAfter = r.Config.FailAfterSbrk
		return p, nil
	case "mmap":
		p := provider.NewMmapProvider()
		return p, nil
	default:
		return nil, errors.Newf("trace: unknown provider %q", r.Config.Provider)
	}
}

// Run replays t's ops in order against a new Heap. Live pointers are kept
// indexed by trace id so a later free/realloc of the same id addresses the
// same allocation. Freeing an id that holds no live allocation is a trace
// error; a realloc of such an id behaves as an alloc.
func (r *Runner) Run(t *Trace) (Result, error) {
	p, err := r.newProvider()
	if err != nil {
		return Result{}, err
	}

	h := heap.New(p)
	h.SetLogger(r.Logger)
	if !h.Initialize() {
		return Result{}, errors.New("trace: heap failed to initialize")
	}

	live := make([]heap.Ptr, t.NumIDs)
	for i := range live {
		live[i] = heap.NilPtr
	}

	var res Result
	peak := 0

	for i, op := range t.Ops {
		if err := r.checkBounds(op, len(live)); err != nil {
			return res, err
		}

		switch op.Kind {
		case OpAlloc:
			ptr := h.Allocate(op.Size)
			if ptr == heap.NilPtr {
				return res, errors.Newf("trace: alloc failed at step %d (id %d, size %d)", i, op.ID, op.Size)
			}
			live[op.ID] = ptr

		case OpFree:
			if live[op.ID] == heap.NilPtr {
				return res, errors.Newf("trace: free of unallocated id %d at step %d", op.ID, i)
			}
			h.Free(live[op.ID])
			live[op.ID] = heap.NilPtr

		case OpRealloc:
			ptr := h.Reallocate(live[op.ID], op.Size)
			if op.Size != 0 && ptr == heap.NilPtr {
				return res, errors.Newf("trace: realloc failed at step %d (id %d, size %d)", i, op.ID, op.Size)
			}
			live[op.ID] = ptr
		}

		res.Steps++

		if r.Config.CheckEveryStep {
			if verr := h.Validate(); verr != nil {
				res.Violation = verr
				res.ViolationAt = i
				return res, nil
			}
		}

		stats := h.Stats()
		if stats.BlockBytes > peak {
			peak = stats.BlockBytes
		}
	}

	res.PeakBytes = peak
	res.FinalStats = h.Stats()

	r.log("run complete", slog.Int("steps", res.Steps), slog.Int("peak_bytes", peak))

	return res, nil
}

func (r *Runner) checkBounds(op Op, numIDs int) error {
	if op.ID < 0 || op.ID >= numIDs {
		return errors.Newf("trace: id %d out of range [0,%d)", op.ID, numIDs)
	}
	return nil
}

func (r *Runner) log(msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.With(slog.String("run_id", r.runID)).Info(msg, args...)
}
