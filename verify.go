package authcode

import (
	"context"
	"net/http"
)

// VerifyFunc accepts or rejects the user behind a successful exchange.
// Returning the zero U with a nil error rejects the user; info is passed on
// as the fail info.
type VerifyFunc[U any] func(ctx context.Context, tokens Tokens, profile *Profile) (user U, info any, err error)

// VerifyWithRequestFunc is VerifyFunc with the inbound request forwarded.
type VerifyWithRequestFunc[U any] func(r *http.Request, tokens Tokens, profile *Profile) (user U, info any, err error)

// Verifier wraps one of the two verify callback forms.
type Verifier[U any] struct {
	fn    VerifyFunc[U]
	reqFn VerifyWithRequestFunc[U]
}

// Verify builds a Verifier that does not see the request.
func Verify[U any](fn VerifyFunc[U]) Verifier[U] {
	return Verifier[U]{fn: fn}
}

// VerifyWithRequest builds a Verifier that receives the inbound request first.
func VerifyWithRequest[U any](fn VerifyWithRequestFunc[U]) Verifier[U] {
	return Verifier[U]{reqFn: fn}
}

// PassesRequest reports whether the request is forwarded to the callback.
func (v Verifier[U]) PassesRequest() bool {
	return v.reqFn != nil
}

func (v Verifier[U]) valid() bool {
	return v.fn != nil || v.reqFn != nil
}

func (v Verifier[U]) call(r *http.Request, tokens Tokens, profile *Profile) (U, any, error) {
	if v.reqFn != nil {
		return v.reqFn(r, tokens, profile)
	}
	return v.fn(r.Context(), tokens, profile)
}
