package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateNonPositiveWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different pools")
	}
	if !Default().IsRunning() {
		t.Error("default pool is not running")
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil)
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d after Close, want 2", ran)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
}

// =============================================================================
// Bands Tests
// =============================================================================

func TestWorkerPool_BandsCoverRangeOnce(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	tests := []struct {
		name      string
		lo, hi, n int
		wantBands int
	}{
		{"even", 0, 100, 4, 4},
		{"uneven", 3, 20, 5, 5},
		{"more bands than rows", 0, 3, 8, 3},
		{"single band", 10, 50, 1, 1},
		{"zero bands", 0, 10, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, tt.hi)
			var bands atomic.Int32
			pool.Bands(tt.lo, tt.hi, tt.n, func(lo, hi int) {
				bands.Add(1)
				for y := lo; y < hi; y++ {
					atomic.AddInt32(&hits[y], 1)
				}
			})
			if int(bands.Load()) != tt.wantBands {
				t.Errorf("bands = %d, want %d", bands.Load(), tt.wantBands)
			}
			for y := tt.lo; y < tt.hi; y++ {
				if hits[y] != 1 {
					t.Errorf("row %d visited %d times", y, hits[y])
				}
			}
		})
	}
}

func TestWorkerPool_BandsEmptyRange(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	pool.Bands(5, 5, 4, func(int, int) { called = true })
	if called {
		t.Error("fn called for an empty range")
	}
}

func TestWorkerPool_ConcurrentCallers(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 8 {
		wg.Go(func() {
			pool.Bands(0, 64, 4, func(lo, hi int) {
				total.Add(int64(hi - lo))
			})
		})
	}
	wg.Wait()

	if total.Load() != 8*64 {
		t.Errorf("total = %d, want %d", total.Load(), 8*64)
	}
}

func BenchmarkWorkerPool_Bands(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	for b.Loop() {
		pool.Bands(0, 1024, pool.Workers(), func(lo, hi int) {
			_ = hi - lo
		})
	}
}
