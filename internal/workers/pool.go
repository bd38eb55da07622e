// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/MKhiriev/go-scaffold-api/internal/logger"
)

var (
	// ErrPoolStopped is returned when work is submitted to a stopped pool.
	ErrPoolStopped = errors.New("worker pool is stopped")
	// ErrTaskPanicked is returned when the submitted function panicked.
	ErrTaskPanicked = errors.New("worker task panicked")
)

type task struct {
	fn   func()
	done chan struct{}
	err  error
}

// Pool executes submitted functions on a fixed number of goroutines, so
// CPU-bound work cannot grow beyond size concurrent executions no matter how
// many requests arrive.
type Pool struct {
	size  int
	tasks chan *task
	quit  chan struct{}
	wg    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once

	logger *logger.Logger
}

// NewPool creates a pool of size goroutines. A non-positive size means
// runtime.NumCPU(). The pool accepts work only after Run.
func NewPool(size int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &Pool{
		size:   size,
		tasks:  make(chan *task),
		quit:   make(chan struct{}),
		logger: log,
	}
}

// Size returns the number of goroutines in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Run starts the pool goroutines. Subsequent calls are no-ops.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.wg.Add(p.size)
		for range p.size {
			go p.loop()
		}
		p.logger.Debug().Int("size", p.size).Msg("worker pool started")
	})
}

// Stop signals the pool goroutines to exit and waits for the tasks they are
// executing to finish. Work submitted afterwards fails with ErrPoolStopped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		p.logger.Debug().Msg("worker pool stopped")
	})
}

// Submit runs fn on one of the pool goroutines and waits for it to return.
//
// If ctx is done before a goroutine picks fn up, fn is never run. If ctx is
// done while fn is running, Submit returns ctx.Err() immediately and fn
// finishes in the background.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := &task{fn: fn, done: make(chan struct{})}

	select {
	case p.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}

	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()

	for {
		select {
		case t := <-p.tasks:
			p.execute(t)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) execute(t *task) {
	defer close(t.done)
	defer func() {
		if r := recover(); r != nil {
			t.err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			p.logger.Error().Err(t.err).Str("func", "workers.Pool.execute").Msg("recovered from panic in pool task")
		}
	}()

	t.fn()
}

// Do runs fn on p and returns its result. See [Pool.Submit] for the
// cancellation rules.
func Do[T any](ctx context.Context, p *Pool, fn func() T) (T, error) {
	var result T
	if err := p.Submit(ctx, func() { result = fn() }); err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
