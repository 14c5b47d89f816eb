package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassBoundaries(t *testing.T) {
	cases := []struct {
		size uint64
		want int
	}{
		{16, 0}, {31, 0},
		{32, 1}, {63, 1},
		{64, 2}, {127, 2},
		{128, 3}, {255, 3},
		{256, 4}, {511, 4},
		{512, 5}, {1023, 5},
		{1024, 6}, {2047, 6},
		{2048, 7}, {3071, 7},
		{3072, 8}, {4095, 8},
		{4096, 9}, {6655, 9},
		{6656, 10}, {8191, 10},
		{8192, 11}, {16383, 11},
		{16384, 12}, {32767, 12},
		{32768, 13}, {1 << 20, 13},
	}

	for _, c := range cases {
		require.Equal(t, c.want, class(c.size), "size %d", c.size)
	}
}

func TestClassIsMonotonic(t *testing.T) {
	prev := class(16)
	for size := uint64(16); size <= 1<<20; size += 16 {
		got := class(size)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
