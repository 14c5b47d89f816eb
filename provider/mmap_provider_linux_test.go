//go:build linux

package provider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/segalloc/provider"
)

func TestMmapProviderGrowsAndRelocatesSafely(t *testing.T) {
	p := provider.NewMmapProvider()
	defer p.Close()

	_, err := p.Sbrk(4096)
	require.NoError(t, err)

	p.WriteWord(0, 0x1122334455667788)

	// Growing far enough to force mremap to relocate the backing mapping
	// must not disturb bytes already committed at lower offsets, since
	// Addr is a logical offset rather than a raw pointer.
	_, err = p.Sbrk(1 << 20)
	require.NoError(t, err)

	require.Equal(t, uint64(0x1122334455667788), p.ReadWord(0))
}

func TestMmapProviderCloseUnmaps(t *testing.T) {
	p := provider.NewMmapProvider()
	_, err := p.Sbrk(4096)
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
