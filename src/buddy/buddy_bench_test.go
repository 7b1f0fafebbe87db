package buddy

import (
	"testing"
	"unsafe"
)

func benchAllocFree(b *testing.B, size uintptr) {
	var pool Pool
	Init(&pool, uintptr(1)<<DefaultK)
	defer Destroy(&pool)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem, err := Allocate(&pool, size)
		if err != nil {
			b.Fatal("allocate failed:", err)
		}
		Free(&pool, mem)
	}
}

func BenchmarkAllocFreeSmall(b *testing.B)  { benchAllocFree(b, 64) }
func BenchmarkAllocFreeMedium(b *testing.B) { benchAllocFree(b, 1024) }
func BenchmarkAllocFreeLarge(b *testing.B)  { benchAllocFree(b, 8192) }

// BenchmarkSequentialAllocFree allocates a batch before freeing any of
// it, exercising split depth rather than immediate coalescing.
func BenchmarkSequentialAllocFree(b *testing.B) {
	var pool Pool
	Init(&pool, uintptr(1)<<DefaultK)
	defer Destroy(&pool)

	const batch = 100
	ptrs := make([]unsafe.Pointer, batch)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < batch; j++ {
			mem, err := Allocate(&pool, 1024)
			if err != nil {
				b.Fatal("allocate failed:", err)
			}
			ptrs[j] = mem
		}
		for j := 0; j < batch; j++ {
			Free(&pool, ptrs[j])
		}
	}
}

// BenchmarkRandomSizeAllocFree cycles through a spread of request sizes
// to exercise splitting to varying target orders.
func BenchmarkRandomSizeAllocFree(b *testing.B) {
	var pool Pool
	Init(&pool, uintptr(1)<<DefaultK)
	defer Destroy(&pool)

	sizes := []uintptr{64, 128, 256, 512, 1024, 2048, 4096}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		size := sizes[i%len(sizes)]
		mem, err := Allocate(&pool, size)
		if err != nil {
			b.Fatal("allocate failed:", err)
		}
		Free(&pool, mem)
	}
}
