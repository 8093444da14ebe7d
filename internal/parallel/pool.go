// Package parallel runs independent bands of image rows on a pool of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for row-parallel drawing.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, so bands that take longer than their neighbours do not stall the
// whole batch.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

var defaultPool = sync.OnceValue(func() *WorkerPool {
	return NewWorkerPool(0)
})

// Default returns a process-wide pool sized to GOMAXPROCS. It is created on
// first use and never closed.
func Default() *WorkerPool {
	return defaultPool()
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it.
// Work submitted after Close runs on the calling goroutine, so ExecuteAll
// always completes every item.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))
	for i, fn := range work {
		wrapped := func() {
			defer pending.Done()
			fn()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	pending.Wait()
}

// Bands splits the half-open range [lo, hi) into at most n contiguous bands
// and calls fn for each one on the pool. It returns when every band is done.
// Bands never overlap, so fn may write to per-row state without locking.
func (p *WorkerPool) Bands(lo, hi, n int, fn func(lo, hi int)) {
	total := hi - lo
	if total <= 0 {
		return
	}
	n = max(1, min(n, total))
	if n == 1 {
		fn(lo, hi)
		return
	}

	work := make([]func(), 0, n)
	for i := range n {
		a := lo + total*i/n
		b := lo + total*(i+1)/n
		work = append(work, func() { fn(a, b) })
	}
	p.ExecuteAll(work)
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still hands work to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
