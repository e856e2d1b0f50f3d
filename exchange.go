package authcode

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// Tokens is the result of a successful code exchange.
// Token holds the full oauth2 response including expiry and extra fields.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	Token        *oauth2.Token
}

// ExchangeParams are sent to the token endpoint alongside the code.
type ExchangeParams struct {
	GrantType   string
	RedirectURI string
}

// Exchanger trades an authorization code for tokens.
type Exchanger interface {
	Exchange(ctx context.Context, code string, params ExchangeParams) (Tokens, error)
}

type oauth2Exchanger struct {
	conf   *oauth2.Config
	client *http.Client
}

func newOAuth2Exchanger(conf *oauth2.Config, client *http.Client) *oauth2Exchanger {
	return &oauth2Exchanger{conf: conf, client: client}
}

// Exchange posts the code to the token endpoint with client credentials in
// the request body.
func (e *oauth2Exchanger) Exchange(ctx context.Context, code string, params ExchangeParams) (Tokens, error) {
	if e.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.client)
	}

	opts := make([]oauth2.AuthCodeOption, 0, 2)
	if params.GrantType != "" {
		opts = append(opts, oauth2.SetAuthURLParam("grant_type", params.GrantType))
	}
	if params.RedirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", params.RedirectURI))
	}

	tok, err := e.conf.Exchange(ctx, code, opts...)
	if err != nil {
		return Tokens{}, err
	}

	return Tokens{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Token:        tok,
	}, nil
}

var _ Exchanger = (*oauth2Exchanger)(nil)
