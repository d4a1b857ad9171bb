// Package worker provides a fixed-size goroutine pool for background jobs
// such as audit writes. Submit blocks when the queue is full so callers
// apply natural backpressure instead of dropping work.
package worker

import "sync"

type task func()

type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

// NewPool starts n workers draining a queue of the given capacity.
func NewPool(n, queue int) *Pool {
	if n < 1 {
		n = 1
	}
	if queue < 1 {
		queue = 1
	}
	p := &Pool{jobs: make(chan task, queue)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) { p.jobs <- f }

// Depth reports how many jobs are queued but not yet picked up.
func (p *Pool) Depth() int { return len(p.jobs) }

// Stop closes the queue and waits for in-flight jobs. Submitting after
// Stop panics, so shut the pool down only once producers are done.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
