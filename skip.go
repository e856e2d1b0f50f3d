package authcode

import (
	"context"

	"github.com/dmitrymomot/authcode/pkg/async"
)

type skipKind uint8

const (
	skipFixed skipKind = iota
	skipSync
	skipAsync
)

// SkipProfile decides per attempt whether the user profile is loaded.
// The zero value never skips.
type SkipProfile struct {
	kind  skipKind
	fixed bool
	sync  func() bool
	async func(ctx context.Context, accessToken string) (bool, error)
}

// SkipFixed always returns skip.
func SkipFixed(skip bool) SkipProfile {
	return SkipProfile{kind: skipFixed, fixed: skip}
}

// SkipWhen evaluates fn synchronously on every attempt.
func SkipWhen(fn func() bool) SkipProfile {
	if fn == nil {
		return SkipProfile{}
	}
	return SkipProfile{kind: skipSync, sync: fn}
}

// SkipWhenAsync runs fn concurrently with the access token and waits for it.
// An error from fn ends the attempt with OutcomeError.
func SkipWhenAsync(fn func(ctx context.Context, accessToken string) (bool, error)) SkipProfile {
	if fn == nil {
		return SkipProfile{}
	}
	return SkipProfile{kind: skipAsync, async: fn}
}

func (s SkipProfile) evaluate(ctx context.Context, accessToken string) (bool, error) {
	switch s.kind {
	case skipSync:
		return s.sync(), nil
	case skipAsync:
		return async.Async(ctx, accessToken, s.async).AwaitContext(ctx)
	default:
		return s.fixed, nil
	}
}
