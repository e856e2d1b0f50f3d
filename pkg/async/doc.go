// Package async runs a single function on its own goroutine and hands back a
// Future for its result.
//
// The strategy uses it for asynchronous skip-profile predicates: the predicate
// runs concurrently and the attempt waits on AwaitContext, so a cancelled
// request stops waiting without the predicate having to cooperate.
//
//	f := async.Async(ctx, token, func(ctx context.Context, token string) (bool, error) {
//		return cache.Has(ctx, token)
//	})
//	skip, err := f.AwaitContext(ctx)
package async
