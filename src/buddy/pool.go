package buddy

import (
	"unsafe"

	"github.com/pbnjay/memory"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Pool is the complete managed memory region plus its metadata: the
// base of an OS-reserved mapping, the order of the whole region, and
// one free-list sentinel per order it can ever split down to.
//
// Pool carries no lock. It is single-actor by design (see the package
// doc); callers sharing one across goroutines must serialize externally.
type Pool struct {
	base     uintptr
	numBytes uintptr
	kvalM    uint
	avail    [MaxK]header
}

// Init reserves 2^k bytes of anonymous read/write memory from the OS,
// where k is derived from size (orderOf(size), defaulting to DefaultK
// when size is zero) and clamped into [MinK, MaxK-1]. The entire region
// starts out as a single available block of order k.
//
// Failure to obtain the mapping is fatal: the pool cannot uphold its
// tiling invariant without backing memory, and the package logger's
// Fatal level terminates the process after recording why.
func Init(pool *Pool, size uintptr) {
	var k uint
	if size == 0 {
		k = DefaultK
	} else {
		k = orderOf(size)
	}
	if k < MinK {
		k = MinK
	}
	if k > MaxK-1 {
		k = MaxK - 1
	}

	pool.kvalM = k
	pool.numBytes = uintptr(1) << k

	if total := memory.TotalMemory(); total > 0 && uint64(pool.numBytes) > total {
		logger.Warn("buddy: pool request exceeds detected system memory",
			zap.Uint64("requestedBytes", uint64(pool.numBytes)),
			zap.Uint64("systemBytes", total),
		)
	}

	data, err := unix.Mmap(-1, 0, int(pool.numBytes), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		logger.Fatal("buddy: mmap failed", zap.Error(err), zap.Uintptr("requestedBytes", pool.numBytes))
	}
	pool.base = uintptr(unsafe.Pointer(&data[0]))

	for i := range pool.avail {
		sentinel := &pool.avail[i]
		sentinel.next = sentinel
		sentinel.prev = sentinel
		sentinel.kval = uint16(i)
		sentinel.tag = Unused
	}

	first := headerAt(pool.base)
	first.tag = Available
	first.kval = uint16(k)
	freeListInsert(&pool.avail[k], first)

	logger.Debug("buddy: pool initialized",
		zap.Uint("order", k),
		zap.Uintptr("bytes", pool.numBytes),
		zap.Int("pageSize", unix.Getpagesize()),
	)
}

// Destroy returns the region to the OS and zeroes pool so it may be
// reinitialized. A nil pool, or one that was never initialized, is a
// no-op. Failure of the OS release is fatal for the same reason mapping
// failure is: the pool's invariants no longer have anything to describe.
func Destroy(pool *Pool) {
	if pool == nil || pool.base == 0 {
		return
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(pool.base)), pool.numBytes)
	if err := unix.Munmap(data); err != nil {
		logger.Fatal("buddy: munmap failed", zap.Error(err), zap.Uintptr("bytes", pool.numBytes))
	}

	logger.Debug("buddy: pool destroyed", zap.Uintptr("bytes", pool.numBytes))
	*pool = Pool{}
}
