package buddy

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// ErrOutOfMemory is returned by Allocate when no free block of
// sufficient order exists. It wraps unix.ENOMEM so callers written
// against the errno-style convention can still match it with
// errors.Is(err, unix.ENOMEM).
var ErrOutOfMemory = fmt.Errorf("buddy: %w", unix.ENOMEM)

// outOfMemory is the process-wide compatibility shim the package keeps
// alongside the returned error. It reflects only the outcome of the
// most recent Allocate call with a non-nil pool and a non-zero size;
// calls rejected for bad arguments leave it unchanged. ErrOutOfMemory
// from the return value is the authoritative signal.
var outOfMemory atomic.Bool

// OutOfMemory reports whether the most recent Allocate call on any pool
// in this process, ignoring calls rejected for a nil pool or a zero size,
// failed due to exhaustion.
func OutOfMemory() bool {
	return outOfMemory.Load()
}
