package authcode

import "context"

type userContextKey struct{}

type infoContextKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser[U any](ctx context.Context, user U) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by Middleware.
func UserFromContext[U any](ctx context.Context) (U, bool) {
	user, ok := ctx.Value(userContextKey{}).(U)
	return user, ok
}

// InfoFromContext returns the info the verifier attached to a successful
// attempt, or nil.
func InfoFromContext(ctx context.Context) any {
	return ctx.Value(infoContextKey{})
}
