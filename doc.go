// Package authcode authenticates users who already hold a Facebook OAuth 2.0
// authorization code, typically obtained by a mobile or single-page client
// and posted to the server.
//
// A Strategy validates the inbound request, exchanges the code for tokens,
// loads and normalizes the user profile, and asks an application-supplied
// verify function whether to accept the user. Each call to Authenticate ends
// in exactly one Outcome:
//
//   - OutcomeSuccess: the verify function returned a user.
//   - OutcomeFail: the request carried a provider error, had no body or no
//     code, the token endpoint rejected the code, or the verify function
//     returned no user. Info says why when known.
//   - OutcomeError: the profile could not be fetched or parsed, the skip
//     predicate failed, or the verify function returned an error.
//
// # Usage
//
//	s, err := authcode.New(cfg,
//		authcode.Verify(func(ctx context.Context, t authcode.Tokens, p *authcode.Profile) (*User, any, error) {
//			u, err := users.ByFacebookID(ctx, p.ID)
//			if errors.Is(err, ErrNotFound) {
//				return nil, "unknown account", nil
//			}
//			return u, nil, err
//		}),
//		authcode.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	r.With(authcode.Middleware(s)).Post("/auth/facebook/token", issueSession)
//
// The code and redirect URI are read from the request body (JSON, urlencoded
// or multipart form) under "code" and "redirectUri", falling back to the
// query string. A request without a body always fails.
//
// # Profile loading
//
// Profile loading can be skipped per attempt with WithSkipProfile and one of
// SkipFixed, SkipWhen or SkipWhenAsync; the verify function then receives a
// nil *Profile. WithProfileMapper swaps the Facebook field mapping for another
// provider's.
//
// Token exchange and profile fetch go through golang.org/x/oauth2 by default.
// WithExchanger and WithFetcher replace them.
package authcode
