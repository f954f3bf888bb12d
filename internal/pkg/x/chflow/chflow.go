// Package chflow provides context-aware helpers for receiving from Go
// channels and for waiting on work that cannot itself be cancelled.
package chflow

import "context"

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// result carries the outcome of the function run by Await.
type result[T any] struct {
	val T
	err error
}

// Await runs fn in its own goroutine and waits for it to finish or for ctx
// to be done, whichever happens first.
//
// fn is never interrupted: when ctx ends first, Await returns ctx.Err() and
// the eventual result of fn is discarded.
func Await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	ch := make(chan result[T], 1)
	go func() {
		val, err := fn()
		ch <- result[T]{val: val, err: err}
	}()

	res, ok := Receive(ctx, ch)
	if !ok {
		var zero T
		return zero, ctx.Err()
	}

	return res.val, res.err
}
