// Package workpool runs batches of independent jobs on a fixed set of
// goroutines. Each worker owns a queue and steals from the others when
// its own queue is empty, so one slow shader does not hold up the rest.
package workpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size work-stealing goroutine pool.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()

	// mu is held shared while Run queues jobs and exclusively while Close
	// stops the workers, so no job is queued after the final drain.
	mu      sync.RWMutex
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// New starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run calls fn(i) for every i in [0, n) on the pool and waits for all
// calls to return. Jobs are spread round-robin across workers.
// Run on a closed pool runs nothing. A Run that races with Close either
// runs all of its jobs or none.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return
	}

	var pending sync.WaitGroup
	pending.Add(n)
	for i := range n {
		p.queues[i%p.workers] <- func() {
			defer pending.Done()
			fn(i)
		}
	}
	p.mu.RUnlock()

	pending.Wait()
}

// Close stops the pool after queued jobs finish.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
