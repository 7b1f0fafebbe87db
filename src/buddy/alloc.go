package buddy

import (
	"unsafe"

	"go.uber.org/zap"
)

// Allocate returns a pointer to at least size usable bytes carved out of
// pool, or nil if the request cannot be satisfied. A nil pool or a
// zero-byte request is a programming error: Allocate returns nil, nil
// and never touches the out-of-memory indicator for either.
func Allocate(pool *Pool, size uintptr) (unsafe.Pointer, error) {
	if pool == nil || size == 0 {
		return nil, nil
	}

	k := orderOf(size + headerSize)
	if k < SmallestK {
		k = SmallestK
	}

	j := k
	for j <= pool.kvalM && freeListEmpty(&pool.avail[j]) {
		j++
	}
	if j > pool.kvalM {
		outOfMemory.Store(true)
		logger.Warn("buddy: out of memory", zap.Uintptr("requestedBytes", size), zap.Uint("order", k))
		return nil, ErrOutOfMemory
	}
	outOfMemory.Store(false)

	block := freeListPopFront(&pool.avail[j])

	for j > k {
		j--
		block.kval = uint16(j)

		buddy := buddyOf(pool, block)
		buddy.tag = Available
		buddy.kval = uint16(j)
		freeListInsert(&pool.avail[j], buddy)
	}

	block.tag = Reserved
	return block.payload(), nil
}

// Free returns a pointer previously obtained from Allocate on pool to
// the free-list registry, coalescing with its buddy chain as far as
// possible. Freeing nil is a no-op. Freeing a pointer not obtained from
// this pool is undefined behavior.
func Free(pool *Pool, ptr unsafe.Pointer) {
	if pool == nil || ptr == nil {
		return
	}

	block := blockFromPayload(ptr)
	block.tag = Available

	k := uint(block.kval)
	for k < pool.kvalM {
		buddy := buddyOf(pool, block)
		if buddy.tag != Available || uint(buddy.kval) != k {
			break
		}

		unlink(buddy)

		if buddy.addr() < block.addr() {
			block = buddy
		}

		k++
		block.kval = uint16(k)
	}

	block.tag = Available
	freeListInsert(&pool.avail[k], block)
}
