package authcode

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// maxProfileBody caps how much of a profile response is read.
const maxProfileBody = 1 << 20

// Fetcher performs GET requests authenticated with an access token.
type Fetcher interface {
	Get(ctx context.Context, url, accessToken string) ([]byte, *http.Response, error)
}

type oauth2Fetcher struct {
	client *http.Client
}

func newOAuth2Fetcher(client *http.Client) *oauth2Fetcher {
	return &oauth2Fetcher{client: client}
}

// Get sends the token as a Bearer header. Non-2xx answers are returned as
// *StatusError together with the response.
func (f *oauth2Fetcher) Get(ctx context.Context, url, accessToken string) ([]byte, *http.Response, error) {
	if f.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBody))
	if err != nil {
		return nil, resp, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, resp, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, resp, nil
}

var _ Fetcher = (*oauth2Fetcher)(nil)
