package authcode

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockExchanger is a mock implementation of Exchanger.
type MockExchanger struct {
	mock.Mock
}

func (m *MockExchanger) Exchange(ctx context.Context, code string, params ExchangeParams) (Tokens, error) {
	args := m.Called(ctx, code, params)
	return args.Get(0).(Tokens), args.Error(1)
}

// MockFetcher is a mock implementation of Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Get(ctx context.Context, url, accessToken string) ([]byte, *http.Response, error) {
	args := m.Called(ctx, url, accessToken)
	var body []byte
	if b := args.Get(0); b != nil {
		body = b.([]byte)
	}
	var resp *http.Response
	if r := args.Get(1); r != nil {
		resp = r.(*http.Response)
	}
	return body, resp, args.Error(2)
}

type testUser struct {
	ID string
}
