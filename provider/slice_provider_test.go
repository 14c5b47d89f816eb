package provider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/provider"
)

func TestSliceProviderSbrkGrowsMonotonically(t *testing.T) {
	p := provider.NewSliceProvider()

	lo1, err := p.Sbrk(64)
	require.NoError(t, err)
	require.Equal(t, provider.Addr(0), lo1)

	lo2, err := p.Sbrk(64)
	require.NoError(t, err)
	require.Equal(t, provider.Addr(64), lo2)

	require.Equal(t, provider.Addr(127), p.HeapHi())
}

func TestSliceProviderSbrkRejectsNegativeDelta(t *testing.T) {
	p := provider.NewSliceProvider()
	_, err := p.Sbrk(-1)
	require.ErrorIs(t, err, provider.ErrOutOfMemory)
}

func TestSliceProviderWordRoundTrips(t *testing.T) {
	p := provider.NewSliceProvider()
	_, err := p.Sbrk(64)
	require.NoError(t, err)

	p.WriteWord(8, 0xDEADBEEFCAFEBABE)
	require.Equal(t, uint64(0xDEADBEEFCAFEBABE), p.ReadWord(8))
}

func TestSliceProviderMemcpyAndMemset(t *testing.T) {
	p := provider.NewSliceProvider()
	_, err := p.Sbrk(64)
	require.NoError(t, err)

	p.Store(0, []byte("hello, world!!!!"))
	p.Memcpy(16, 0, 16)

	got := make([]byte, 16)
	p.Load(got, 16)
	require.Equal(t, []byte("hello, world!!!!"), got)

	p.Memset(32, 0xFF, 16)
	got2 := make([]byte, 16)
	p.Load(got2, 32)
	for _, b := range got2 {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestSliceProviderFailAfterInjectsOutOfMemory(t *testing.T) {
	p := provider.NewSliceProvider()
	p.FailAfter = 1

	_, err := p.Sbrk(16)
	require.NoError(t, err)

	_, err = p.Sbrk(16)
	require.ErrorIs(t, err, provider.ErrOutOfMemory)
}
