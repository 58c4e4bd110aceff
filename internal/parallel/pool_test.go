package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		expected := runtime.GOMAXPROCS(0)
		if pool.Workers() != expected {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, pool.Workers(), expected)
		}
		pool.Close()
	}
}

func TestPool_RunExecutesAll(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numUnits = 100

	batch := make([]func(), numUnits)
	for i := range batch {
		batch[i] = func() {
			counter.Add(1)
		}
	}
	pool.Run(batch)

	if counter.Load() != numUnits {
		t.Errorf("counter = %d, want %d", counter.Load(), numUnits)
	}
}

func TestPool_RunIsABarrier(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	batch := make([]func(), 32)
	for i := range batch {
		idx := i
		batch[i] = func() {
			mu.Lock()
			seen[idx] = true
			mu.Unlock()
		}
	}
	pool.Run(batch)

	// Every unit must have completed by the time Run returns.
	for i := range batch {
		if !seen[i] {
			t.Errorf("unit %d had not run when Run returned", i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Must not panic or block.
	pool.Run(nil)
	pool.Run([]func(){})
}

func TestPool_UnevenWork(t *testing.T) {
	// A few slow units mixed with many fast ones; stealing must still
	// complete the whole batch.
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	batch := make([]func(), 40)
	for i := range batch {
		slow := i%10 == 0
		batch[i] = func() {
			if slow {
				time.Sleep(5 * time.Millisecond)
			}
			counter.Add(1)
		}
	}
	pool.Run(batch)

	if counter.Load() != 40 {
		t.Errorf("counter = %d, want 40", counter.Load())
	}
}

func TestPool_SingleWorkerRunsInOrder(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	var mu sync.Mutex
	var order []int
	batch := make([]func(), 16)
	for i := range batch {
		idx := i
		batch[i] = func() {
			mu.Lock()
			order = append(order, idx)
			mu.Unlock()
		}
	}
	pool.Run(batch)

	if len(order) != 16 {
		t.Fatalf("ran %d units, want 16", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("position %d ran unit %d, want %d", i, got, i)
		}
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
	// Run after Close is a no-op and must not block.
	pool.Run([]func(){func() { t.Error("unit ran on closed pool") }})
}

func TestPool_ManyBatches(t *testing.T) {
	pool := NewPool(8)
	defer pool.Close()

	var counter atomic.Int64
	for round := 0; round < 50; round++ {
		batch := make([]func(), 20)
		for i := range batch {
			batch[i] = func() { counter.Add(1) }
		}
		pool.Run(batch)
	}
	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}
