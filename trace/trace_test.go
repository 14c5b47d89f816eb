package trace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/trace"
)

const sampleTrace = `
# comment lines and blanks are ignored
5
3
10
a 0 64
a 1 128
f 0
r 1 256
f 1
a 2 16
f 2
a 0 32
a 1 48
f 0
`

func TestParseReadsHeaderAndOps(t *testing.T) {
	tr, err := trace.Parse(strings.NewReader(sampleTrace))
	require.NoError(t, err)
	require.Equal(t, 5, tr.Weight)
	require.Equal(t, 3, tr.NumIDs)
	require.Len(t, tr.Ops, 10)
	require.Equal(t, trace.OpAlloc, tr.Ops[0].Kind)
	require.Equal(t, 64, tr.Ops[0].Size)
	require.Equal(t, trace.OpFree, tr.Ops[2].Kind)
	require.Equal(t, trace.OpRealloc, tr.Ops[3].Kind)
}

func TestParseRejectsOpCountMismatch(t *testing.T) {
	bad := "1\n1\n5\na 0 16\nf 0\n"
	_, err := trace.Parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseRejectsUnknownOp(t *testing.T) {
	bad := "1\n1\n1\nx 0 16\n"
	_, err := trace.Parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParseRejectsTruncatedHeader(t *testing.T) {
	_, err := trace.Parse(strings.NewReader("1\n2\n"))
	require.Error(t, err)
}
