package authcode

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/authcode/pkg/logger"
)

// Strategy authenticates requests carrying a Facebook authorization code.
// It keeps no state between attempts and is safe for concurrent use.
type Strategy[U comparable] struct {
	cfg       Config
	oauth     *oauth2.Config
	verifier  Verifier[U]
	skip      SkipProfile
	exchanger Exchanger
	fetcher   Fetcher
	mapper    ProfileMapper
	logger    *slog.Logger
}

// New builds a Strategy. ClientID, ClientSecret and a verify function are
// required; endpoints default to Facebook's.
//
//	s, err := authcode.New(cfg, authcode.Verify(func(ctx context.Context, t authcode.Tokens, p *authcode.Profile) (*User, any, error) {
//		return users.FindOrCreate(ctx, p.ID)
//	}), authcode.WithLogger(log))
func New[U comparable](cfg Config, verifier Verifier[U], opts ...Option) (*Strategy[U], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !verifier.valid() {
		return nil, ErrMissingVerifier
	}
	cfg = cfg.withDefaults()

	o := options{
		logger: logger.Discard(),
		mapper: FacebookProfile,
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := o.httpClient
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.AuthorizationURL,
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	s := &Strategy[U]{
		cfg:       cfg,
		oauth:     conf,
		verifier:  verifier,
		skip:      SkipFixed(cfg.SkipUserProfile),
		exchanger: o.exchanger,
		fetcher:   o.fetcher,
		mapper:    o.mapper,
		logger:    o.logger.With(logger.Component("authcode"), logger.Provider(ProviderFacebook)),
	}
	if o.skip != nil {
		s.skip = *o.skip
	}
	if s.exchanger == nil {
		s.exchanger = newOAuth2Exchanger(conf, client)
	}
	if s.fetcher == nil {
		s.fetcher = newOAuth2Fetcher(client)
	}

	return s, nil
}

// Name returns the strategy identifier.
func (s *Strategy[U]) Name() string {
	return StrategyName
}

// Config returns a copy of the effective configuration.
func (s *Strategy[U]) Config() Config {
	return s.cfg.clone()
}

// AuthCodeURL builds the provider dialog URL for clients that start the flow
// through the server. redirectURI may be empty.
func (s *Strategy[U]) AuthCodeURL(state, redirectURI string, opts ...oauth2.AuthCodeOption) string {
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	return s.oauth.AuthCodeURL(state, opts...)
}

// Steps an attempt can end at, as recorded in the outcome log.
const (
	stepCallback = "callback"
	stepRequest  = "request"
	stepExchange = "exchange"
	stepSkip     = "skip_profile"
	stepProfile  = "profile"
	stepVerify   = "verify"
)

// Authenticate runs one attempt: validate the request, exchange the code,
// load the profile unless skipped, and hand the result to the verifier.
//
// Exchange failures and verifier rejections are fails; profile, skip
// predicate and verifier errors are errors.
func (s *Strategy[U]) Authenticate(r *http.Request) Result[U] {
	started := time.Now()
	res, step := s.authenticate(r)
	s.record(r.Context(), uuid.NewString(), step, time.Since(started), res)
	return res
}

func (s *Strategy[U]) authenticate(r *http.Request) (Result[U], string) {
	if perr := providerError(r); perr != nil {
		return fail[U](perr), stepCallback
	}
	if !hasBody(r) {
		return fail[U](nil), stepRequest
	}

	params, err := readParams(r)
	if err != nil {
		return fail[U](err), stepRequest
	}
	if params.Code == "" {
		return fail[U](ErrMissingCode), stepRequest
	}

	ctx := r.Context()

	tokens, err := s.exchanger.Exchange(ctx, params.Code, ExchangeParams{
		GrantType:   GrantTypeAuthorizationCode,
		RedirectURI: params.RedirectURI,
	})
	if err != nil {
		return fail[U](err), stepExchange
	}

	skip, err := s.skip.evaluate(ctx, tokens.AccessToken)
	if err != nil {
		return fault[U](err), stepSkip
	}

	var profile *Profile
	if !skip {
		profile, err = s.UserProfile(ctx, tokens.AccessToken)
		if err != nil {
			return fault[U](err), stepProfile
		}
	}

	user, info, err := s.verifier.call(r, tokens, profile)
	if err != nil {
		return fault[U](err), stepVerify
	}
	var zero U
	if user == zero {
		return fail[U](info), stepVerify
	}

	return success(user, info), stepVerify
}

func (s *Strategy[U]) record(ctx context.Context, attemptID, step string, elapsed time.Duration, res Result[U]) {
	attrs := []any{
		logger.AttemptID(attemptID),
		logger.Outcome(res.Outcome),
		logger.Step(step),
		logger.Duration(elapsed),
	}

	switch res.Outcome {
	case OutcomeError:
		s.logger.ErrorContext(ctx, "authentication error", append(attrs, logger.Error(res.Err))...)
	case OutcomeFail:
		var reason error
		if err, ok := res.Info.(error); ok {
			reason = err
		}
		var perr *ProviderError
		if errors.As(reason, &perr) {
			attrs = append(attrs, slog.String("provider_error", perr.Code))
		}
		s.logger.DebugContext(ctx, "authentication failed", append(attrs, logger.Error(reason))...)
	default:
		s.logger.DebugContext(ctx, "authenticated", attrs...)
	}
}
