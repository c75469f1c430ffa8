package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Job func(ctx context.Context) error

var (
	ErrQueueFull = errors.New("job queue is full")
	ErrStopped   = errors.New("worker pool is stopped")
)

// Pool is a bounded in-process job queue. Submit never blocks: when
// the queue is full the caller gets ErrQueueFull and decides whether
// to run the job inline.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
	log  *zap.Logger

	mu      sync.Mutex
	stopped bool
}

func NewPool(workers, queueSize int, log *zap.Logger) *Pool {
	p := &Pool{
		jobs: make(chan Job, queueSize),
		log:  log,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}

	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := job(context.Background()); err != nil {
			p.log.Error("background job failed", zap.Error(err))
		}
	}
}

func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for queued ones to drain,
// up to the context deadline.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
