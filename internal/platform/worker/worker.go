// Package worker provides the bounded dispatch primitives the simulation
// loop uses to keep CPU-bound measurement work off the goroutine running
// LLM calls, plus panic recovery for the goroutines it launches.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// RecoverPanic recovers a panic in the current goroutine and turns it into
// an error via onErr. Intended to be deferred at the top of any goroutine
// launched by this package.
func RecoverPanic(logger zerolog.Logger, onErr func(error)) {
	if r := recover(); r != nil {
		err := fmt.Errorf("panic: %v", r)
		logger.Error().Interface("recover", r).Msg("recovered panic")

		if onErr != nil {
			onErr(err)
		}
	}
}

// BlockingPool bounds how many dispatched functions can run concurrently, the
// Go-idiomatic stand-in for dispatching CPU-bound work off an async
// runtime's reactor thread. Dispatch blocks the caller until the fn result
// is ready; the bound only limits how many fns run at once.
type BlockingPool struct {
	sem    chan struct{}
	logger zerolog.Logger
}

// NewBlockingPool builds a pool allowing up to size concurrent dispatches.
// The pool logs recovered panics through a no-op logger until WithLogger
// attaches a real one.
func NewBlockingPool(size int) *BlockingPool {
	if size < 1 {
		size = 1
	}

	return &BlockingPool{sem: make(chan struct{}, size), logger: zerolog.Nop()}
}

// WithLogger attaches the logger used to report panics recovered from
// dispatched functions, and returns the pool for chaining.
func (p *BlockingPool) WithLogger(logger zerolog.Logger) *BlockingPool {
	p.logger = logger
	return p
}

// Dispatch runs fn on a pool goroutine and blocks until it returns or ctx is
// canceled. A canceled context returns ctx.Err() without waiting for fn,
// though fn itself keeps running to completion in the background. A panic
// inside fn is recovered and surfaces as an error rather than crashing the
// process.
func (p *BlockingPool) Dispatch(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	type result struct {
		val interface{}
		err error
	}

	done := make(chan result, 1)

	go func() {
		defer func() { <-p.sem }()
		defer RecoverPanic(p.logger, func(err error) {
			done <- result{nil, err}
		})

		val, err := fn()
		done <- result{val, err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Wait runs fns concurrently, bounded by the pool's size, and returns the
// first error encountered (if any) after all fns complete.
func Wait(ctx context.Context, pool *BlockingPool, fns ...func() (interface{}, error)) ([]interface{}, error) {
	results := make([]interface{}, len(fns))
	errs := make([]error, len(fns))

	var wg sync.WaitGroup

	for i, fn := range fns {
		wg.Add(1)

		go func(i int, fn func() (interface{}, error)) {
			defer wg.Done()

			val, err := pool.Dispatch(ctx, fn)
			results[i] = val
			errs[i] = err
		}(i, fn)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
