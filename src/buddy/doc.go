// Package buddy implements a buddy-system memory allocator over a
// single contiguous region of anonymous memory obtained from the OS.
//
// A Pool is initialized once with Init, serves any number of Allocate
// and Free calls, and is returned to the OS with Destroy. A pool is not
// safe for concurrent use; callers sharing one across goroutines must
// serialize access themselves.
package buddy
