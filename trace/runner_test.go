package trace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/trace"
)

const runnableTrace = `
3
3
8
a 0 64
a 1 128
a 2 32
f 1
r 0 256
f 0
f 2
a 1 16
`

func TestRunnerReplaysTraceSuccessfully(t *testing.T) {
	tr, err := trace.Parse(strings.NewReader(runnableTrace))
	require.NoError(t, err)

	r := trace.NewRunner(trace.DefaultConfig(), nil)
	res, err := r.Run(tr)
	require.NoError(t, err)
	require.Nil(t, res.Violation)
	require.Equal(t, 8, res.Steps)
}

func TestRunnerCatchesFreeOfUnallocatedID(t *testing.T) {
	bad := "1\n1\n1\nf 0\n"
	tr, err := trace.Parse(strings.NewReader(bad))
	require.NoError(t, err)

	r := trace.NewRunner(trace.DefaultConfig(), nil)
	_, err = r.Run(tr)
	require.Error(t, err)
}

func TestRunnerCheckEveryStepSucceedsOnCleanTrace(t *testing.T) {
	tr, err := trace.Parse(strings.NewReader(runnableTrace))
	require.NoError(t, err)

	cfg := trace.DefaultConfig()
	cfg.CheckEveryStep = true

	r := trace.NewRunner(cfg, nil)
	res, err := r.Run(tr)
	require.NoError(t, err)
	require.Nil(t, res.Violation)
}

func TestRunnerRejectsOutOfRangeID(t *testing.T) {
	bad := "1\n1\n1\na 5 16\n"
	tr, err := trace.Parse(strings.NewReader(bad))
	require.NoError(t, err)

	r := trace.NewRunner(trace.DefaultConfig(), nil)
	_, err = r.Run(tr)
	require.Error(t, err)
}
