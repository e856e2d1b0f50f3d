package authcode

import (
	"log/slog"
	"net/http"
)

// Option configures a Strategy during construction.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	skip       *SkipProfile
	exchanger  Exchanger
	fetcher    Fetcher
	httpClient *http.Client
	mapper     ProfileMapper
}

// WithLogger sets the logger used to record attempt outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSkipProfile overrides Config.SkipUserProfile with a per-attempt decision.
func WithSkipProfile(skip SkipProfile) Option {
	return func(o *options) {
		o.skip = &skip
	}
}

// WithExchanger replaces the oauth2-based token exchange.
func WithExchanger(e Exchanger) Option {
	return func(o *options) {
		o.exchanger = e
	}
}

// WithFetcher replaces the oauth2-based profile fetch.
func WithFetcher(f Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithHTTPClient sets the client used by the default Exchanger and Fetcher.
// Config.HTTPTimeout is ignored when a client is given.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithProfileMapper replaces FacebookProfile, for providers that share the
// flow but not the payload shape.
func WithProfileMapper(m ProfileMapper) Option {
	return func(o *options) {
		if m != nil {
			o.mapper = m
		}
	}
}
