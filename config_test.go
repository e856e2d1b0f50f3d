package authcode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authcode"
	"github.com/dmitrymomot/authcode/pkg/config"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, authcode.Config{}.Validate(), authcode.ErrMissingClientID)
	assert.ErrorIs(t, authcode.Config{ClientID: "id"}.Validate(), authcode.ErrMissingClientSecret)
	assert.NoError(t, authcode.Config{ClientID: "id", ClientSecret: "secret"}.Validate())
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("FACEBOOK_CLIENT_ID", "env-client")
	t.Setenv("FACEBOOK_CLIENT_SECRET", "env-secret")
	t.Setenv("FACEBOOK_PROFILE_FIELDS", "id,name,email")
	t.Setenv("FACEBOOK_ENABLE_PROOF", "true")
	t.Setenv("FACEBOOK_HTTP_TIMEOUT", "3s")

	var cfg authcode.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "env-client", cfg.ClientID)
	assert.Equal(t, "env-secret", cfg.ClientSecret)
	assert.Equal(t, []string{"id", "name", "email"}, cfg.ProfileFields)
	assert.Equal(t, []string{"email"}, cfg.Scopes)
	assert.True(t, cfg.EnableProof)
	assert.False(t, cfg.SkipUserProfile)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.TokenURL)

	s, err := authcode.New(cfg, authcode.Verify[string](nil))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, authcode.ErrMissingVerifier)
}
