package authcode

import (
	"time"

	"golang.org/x/oauth2/facebook"
)

// Provider identifiers.
const (
	ProviderFacebook = "facebook"
	StrategyName     = "facebook-authcode"
)

// DefaultProfileURL is the Graph API endpoint queried for the user profile.
const DefaultProfileURL = "https://graph.facebook.com/v3.2/me"

// GrantTypeAuthorizationCode is sent with every token exchange.
const GrantTypeAuthorizationCode = "authorization_code"

// Config holds the strategy configuration. It is copied into the strategy at
// construction and never mutated afterwards.
type Config struct {
	ClientID         string        `env:"FACEBOOK_CLIENT_ID,required"`
	ClientSecret     string        `env:"FACEBOOK_CLIENT_SECRET,required"`
	AuthorizationURL string        `env:"FACEBOOK_AUTHORIZATION_URL"`
	TokenURL         string        `env:"FACEBOOK_TOKEN_URL"`
	ProfileURL       string        `env:"FACEBOOK_PROFILE_URL"`
	ProfileFields    []string      `env:"FACEBOOK_PROFILE_FIELDS" envSeparator:","`
	Scopes           []string      `env:"FACEBOOK_SCOPES" envSeparator:"," envDefault:"email"`
	EnableProof      bool          `env:"FACEBOOK_ENABLE_PROOF" envDefault:"false"`
	SkipUserProfile  bool          `env:"FACEBOOK_SKIP_USER_PROFILE" envDefault:"false"`
	HTTPTimeout      time.Duration `env:"FACEBOOK_HTTP_TIMEOUT" envDefault:"10s"`
}

// Validate reports missing credentials.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}

// withDefaults fills absent endpoints with the provider's fixed values.
func (c Config) withDefaults() Config {
	if c.AuthorizationURL == "" {
		c.AuthorizationURL = facebook.Endpoint.AuthURL
	}
	if c.TokenURL == "" {
		c.TokenURL = facebook.Endpoint.TokenURL
	}
	if c.ProfileURL == "" {
		c.ProfileURL = DefaultProfileURL
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 10 * time.Second
	}
	return c.clone()
}

func (c Config) clone() Config {
	if c.ProfileFields != nil {
		c.ProfileFields = append([]string(nil), c.ProfileFields...)
	}
	if c.Scopes != nil {
		c.Scopes = append([]string(nil), c.Scopes...)
	}
	return c
}
