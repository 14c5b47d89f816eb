// Package trace parses and replays allocator operation scripts: the
// reference "test driver" collaborator spec.md leaves out of scope, in the
// shape of the classic malloclab .rep trace format.
package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// OpKind identifies which allocator call a Op requests.
type OpKind int

const (
	OpAlloc OpKind = iota
	OpFree
	OpRealloc
)

// Op is a single line of a trace: an operation against a caller-assigned
// id that ties an alloc/realloc to the later frees/reallocs of the same
// logical allocation.
type Op struct {
	Kind OpKind
	ID   int
	Size int
}

// Trace is a parsed operation script, preceded by a declared weight (printed
// as-is by bench.go) and id space size.
type Trace struct {
	Weight int
	NumIDs int
	Ops    []Op
}

// Parse reads a trace in the line-oriented format:
//
//	<weight>
//	<num_ids>
//	<num_ops>
//	a <id> <size>
//	f <id>
//	r <id> <size>
//
// Blank lines and lines starting with # are ignored everywhere in the
// file, matching how malloclab traces carry comments.
func Parse(r io.Reader) (*Trace, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var header []string
	for len(header) < 3 && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header = append(header, line)
	}
	if len(header) < 3 {
		return nil, errors.New("trace: truncated header")
	}

	weight, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrap(err, "trace: invalid weight")
	}
	numIDs, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrap(err, "trace: invalid id count")
	}
	numOps, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, errors.Wrap(err, "trace: invalid op count")
	}

	t := &Trace{Weight: weight, NumIDs: numIDs, Ops: make([]Op, 0, numOps)}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		op, err := parseOp(fields)
		if err != nil {
			return nil, err
		}
		t.Ops = append(t.Ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "trace: scan failed")
	}

	if len(t.Ops) != numOps {
		return nil, errors.Newf("trace: declared %d ops, found %d", numOps, len(t.Ops))
	}

	return t, nil
}

func parseOp(fields []string) (Op, error) {
	if len(fields) == 0 {
		return Op{}, errors.New("trace: empty op line")
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Op{}, errors.Wrapf(err, "trace: invalid id in %q", strings.Join(fields, " "))
	}

	switch fields[0] {
	case "a":
		if len(fields) != 3 {
			return Op{}, errors.Newf("trace: malformed alloc line %q", strings.Join(fields, " "))
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil {
			return Op{}, errors.Wrapf(err, "trace: invalid size in %q", strings.Join(fields, " "))
		}
		return Op{Kind: OpAlloc, ID: id, Size: size}, nil

	case "f":
		if len(fields) != 2 {
			return Op{}, errors.Newf("trace: malformed free line %q", strings.Join(fields, " "))
		}
		return Op{Kind: OpFree, ID: id}, nil

	case "r":
		if len(fields) != 3 {
			return Op{}, errors.Newf("trace: malformed realloc line %q", strings.Join(fields, " "))
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil {
			return Op{}, errors.Wrapf(err, "trace: invalid size in %q", strings.Join(fields, " "))
		}
		return Op{Kind: OpRealloc, ID: id, Size: size}, nil

	default:
		return Op{}, errors.Newf("trace: unknown op %q", fields[0])
	}
}
