package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	p := New(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
}

func TestNewDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		p := New(n)
		if p.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("New(%d).Workers() = %d, want GOMAXPROCS", n, p.Workers())
		}
		p.Close()
	}
}

func TestRun(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 500
	seen := make([]atomic.Int32, n)
	p.Run(n, func(i int) {
		seen[i].Add(1)
	})

	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Fatalf("job %d ran %d times, want 1", i, got)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()

	called := false
	p.Run(0, func(int) { called = true })
	if called {
		t.Error("Run(0) should not call fn")
	}
}

func TestRunAfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	var calls atomic.Int32
	p.Run(10, func(int) { calls.Add(1) })
	if calls.Load() != 0 {
		t.Errorf("closed pool ran %d jobs", calls.Load())
	}
}

func TestRunConcurrentBatches(t *testing.T) {
	p := New(3)
	defer p.Close()

	var total atomic.Int64
	done := make(chan struct{})
	for range 4 {
		go func() {
			p.Run(100, func(int) { total.Add(1) })
			done <- struct{}{}
		}()
	}
	for range 4 {
		<-done
	}

	if total.Load() != 400 {
		t.Errorf("total = %d, want 400", total.Load())
	}
}

func TestRunRacingClose(t *testing.T) {
	for range 50 {
		p := New(2)

		const batch = 64
		var total atomic.Int64
		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Run(batch, func(int) { total.Add(1) })
			}()
		}
		p.Close()

		finished := make(chan struct{})
		go func() {
			wg.Wait()
			close(finished)
		}()
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after Close")
		}

		if total.Load()%batch != 0 {
			t.Fatalf("ran %d jobs, want whole batches of %d", total.Load(), batch)
		}
	}
}
