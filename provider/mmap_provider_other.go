//go:build !linux

package provider

// MmapProvider is only implemented on linux, where mremap lets a mapping
// grow in place. On other platforms NewMmapProvider returns a SliceProvider
// instead so callers that select "mmap" in configuration still get a
// working, if non-mmap-backed, provider.
type MmapProvider = SliceProvider

// NewMmapProvider falls back to NewSliceProvider outside linux.
func NewMmapProvider() *MmapProvider {
	return NewSliceProvider()
}
