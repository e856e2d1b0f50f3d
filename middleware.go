package authcode

import (
	"context"
	"net/http"
)

// FailureHandler writes the response for a rejected attempt.
type FailureHandler func(w http.ResponseWriter, r *http.Request, info any)

// ErrorHandler writes the response for an attempt that ended in an error.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onFail  FailureHandler
	onError ErrorHandler
}

// WithFailureHandler replaces the default 401 response.
func WithFailureHandler(h FailureHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onFail = h
		}
	}
}

// WithErrorHandler replaces the default 500 response.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// Middleware authenticates every request with s. On success the user and
// info are stored in the request context and next is called; otherwise the
// failure or error handler answers and next is skipped.
func Middleware[U comparable](s *Strategy[U], opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		onFail:  defaultFailureHandler,
		onError: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := s.Authenticate(r)
			switch res.Outcome {
			case OutcomeSuccess:
				ctx := WithUser(r.Context(), res.User)
				if res.Info != nil {
					ctx = context.WithValue(ctx, infoContextKey{}, res.Info)
				}
				next.ServeHTTP(w, r.WithContext(ctx))
			case OutcomeFail:
				cfg.onFail(w, r, res.Info)
			default:
				cfg.onError(w, r, res.Err)
			}
		})
	}
}

func defaultFailureHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
