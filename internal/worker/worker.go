package worker

import "sync"

// Task is a unit of work executed by the pool. The seeder uses the pool to
// fan out bcrypt hashing, which is the expensive part of seeding.
type Task func()

// Pool is a fixed-size goroutine pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// Submit blocks until a worker picks up the task.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
