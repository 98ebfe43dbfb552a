package worker

import "sync"

type task func()

// Pool runs queued tasks (event publishes, mostly) on a fixed set of
// goroutines so request handlers never wait on them.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 256)}
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

func (p *Pool) Submit(f func()) { p.jobs <- f }

func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
