// worker/pool.go
package worker

import (
	"context"
	"sync"
)

type Job[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	JobID  string
	Output T
	Err    error
}

// Pool runs submitted jobs on a fixed set of goroutines. Results arrive in
// completion order; the channel closes after Close once every job is done.
type Pool[T any] struct {
	ctx     context.Context
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

func NewPool[T any](ctx context.Context, workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		ctx:     ctx,
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := p.ctx.Err(); err != nil {
			p.results <- Result[T]{JobID: job.id, Err: err}
			continue
		}
		output, err := job.fn(p.ctx)
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
			Err:    err,
		}
	}
}

func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Close stops accepting jobs. It must be called exactly once.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Map runs fn once per id on workerCount goroutines and returns the results
// in the order of ids.
func Map[T any](ctx context.Context, workerCount int, ids []string, fn func(ctx context.Context, id string) (T, error)) []Result[T] {
	p := NewPool[T](ctx, workerCount, len(ids))
	go func() {
		for _, id := range ids {
			p.Submit(id, func(ctx context.Context) (T, error) { return fn(ctx, id) })
		}
		p.Close()
	}()

	byID := make(map[string][]Result[T], len(ids))
	for r := range p.Results() {
		byID[r.JobID] = append(byID[r.JobID], r)
	}

	out := make([]Result[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id][0])
		byID[id] = byID[id][1:]
	}
	return out
}
