package authcode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipProfile_Evaluate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("zero value never skips", func(t *testing.T) {
		t.Parallel()

		skip, err := SkipProfile{}.evaluate(ctx, "token")
		require.NoError(t, err)
		assert.False(t, skip)
	})

	t.Run("fixed", func(t *testing.T) {
		t.Parallel()

		skip, err := SkipFixed(true).evaluate(ctx, "token")
		require.NoError(t, err)
		assert.True(t, skip)
	})

	t.Run("sync predicate runs per call", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := SkipWhen(func() bool {
			calls++
			return calls%2 == 0
		})

		first, _ := s.evaluate(ctx, "token")
		second, _ := s.evaluate(ctx, "token")
		assert.False(t, first)
		assert.True(t, second)
		assert.Equal(t, 2, calls)
	})

	t.Run("async predicate receives access token", func(t *testing.T) {
		t.Parallel()

		var got string
		s := SkipWhenAsync(func(_ context.Context, token string) (bool, error) {
			got = token
			return true, nil
		})

		skip, err := s.evaluate(ctx, "token-xyz")
		require.NoError(t, err)
		assert.True(t, skip)
		assert.Equal(t, "token-xyz", got)
	})

	t.Run("async predicate error", func(t *testing.T) {
		t.Parallel()

		want := errors.New("boom")
		_, err := SkipWhenAsync(func(context.Context, string) (bool, error) {
			return true, want
		}).evaluate(ctx, "token")
		assert.ErrorIs(t, err, want)
	})

	t.Run("async predicate abandoned on cancellation", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err := SkipWhenAsync(func(context.Context, string) (bool, error) {
			<-release
			return true, nil
		}).evaluate(cctx, "token")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil functions fall back to never skip", func(t *testing.T) {
		t.Parallel()

		skip, err := SkipWhen(nil).evaluate(ctx, "token")
		require.NoError(t, err)
		assert.False(t, skip)

		skip, err = SkipWhenAsync(nil).evaluate(ctx, "token")
		require.NoError(t, err)
		assert.False(t, skip)
	})
}
