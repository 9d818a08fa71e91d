// Package parallel distributes per-row rasterization work across a
// small pool of workers. Rows crossing the disk classify against many
// more geodesics than rows outside it, so workers steal from their
// peers to even out the imbalance.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs row bands on a fixed set of worker goroutines. Each worker
// owns a queue and steals from the others when its own runs dry.
//
// Close must not be called concurrently with Rows.
type Pool struct {
	workers   int
	queues    []chan func()
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool starts a pool with the given number of workers. Zero or
// negative selects GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	// Each worker receives at most bandsPerWorker bands per Rows call,
	// so this capacity lets the submitter run ahead without blocking.
	for i := range workers {
		p.queues[i] = make(chan func(), bandsPerWorker)
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// bandsPerWorker oversubscribes the band count so stealing has slack to
// rebalance uneven rows.
const bandsPerWorker = 4

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

		default:
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
}

// drain runs whatever is still queued so a band submitted just before
// shutdown is not lost.
func drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil when
// every queue is empty.
func (p *Pool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
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

// Rows calls fn once for every row in [0, rows), distributing bands of
// consecutive rows across the workers, and blocks until the last row is
// done. Calls for different rows may run concurrently; fn must only
// touch state owned by its row. On a closed pool Rows degrades to
// running serially on the caller's goroutine.
func (p *Pool) Rows(rows int, fn func(y int)) {
	if rows <= 0 {
		return
	}
	select {
	case <-p.done:
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	default:
	}

	bands := p.workers * bandsPerWorker
	if bands > rows {
		bands = rows
	}
	step := (rows + bands - 1) / bands

	var wg sync.WaitGroup
	for i, next := 0, 0; next < rows; i++ {
		lo, hi := next, next+step
		if hi > rows {
			hi = rows
		}
		next = hi

		wg.Add(1)
		band := func() {
			defer wg.Done()
			for y := lo; y < hi; y++ {
				fn(y)
			}
		}

		select {
		case p.queues[i%p.workers] <- band:
		case <-p.done:
			band()
		}
	}
	wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after finishing queued bands. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}
