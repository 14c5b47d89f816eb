package heap

import "github.com/pkg/errors"

// ErrNotInitialized is returned by Validate when it is called before
// Initialize has succeeded.
var ErrNotInitialized = errors.New("heap: not initialized")

// ErrCorruptHeap is the error Validate returns when a consistency check
// fails. Its message identifies which invariant was violated.
var ErrCorruptHeap = errors.New("heap: corrupt heap")
