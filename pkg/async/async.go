package async

import "context"

// Future holds the eventual result of a function started with Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// AwaitContext blocks until the function returns or ctx is done, whichever
// comes first. When ctx wins, the context error is returned and the
// goroutine is left to finish on its own.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Async runs fn(ctx, param) on its own goroutine and returns a Future for
// its result. fn is not called at all if ctx is already done.
// A nil fn yields a completed Future holding ErrNilFunc.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	if fn == nil {
		f.err = ErrNilFunc
		close(f.done)
		return f
	}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}
