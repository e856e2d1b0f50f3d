package authcode

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFacebookProfile(t *testing.T) {
	t.Parallel()

	t.Run("maps minimal payload", func(t *testing.T) {
		t.Parallel()

		data, err := decodeProfile([]byte(janeProfile))
		require.NoError(t, err)

		p := FacebookProfile(data)
		assert.Equal(t, &Profile{
			Provider:    "facebook",
			ID:          "42",
			DisplayName: "Jane Doe",
			Name:        ProfileName{},
			Emails:      []ProfileEmail{{Value: "jane@example.com"}},
		}, p)
	})

	t.Run("maps name parts", func(t *testing.T) {
		t.Parallel()

		data, err := decodeProfile([]byte(`{"id":"7","name":"John Smith","given_name":"John","family_name":"Smith"}`))
		require.NoError(t, err)

		p := FacebookProfile(data)
		assert.Equal(t, "John", p.Name.GivenName)
		assert.Equal(t, "Smith", p.Name.FamilyName)
		require.Len(t, p.Emails, 1)
		assert.Empty(t, p.Emails[0].Value)
	})

	t.Run("accepts numeric id", func(t *testing.T) {
		t.Parallel()

		data, err := decodeProfile([]byte(`{"id":10220000000000001}`))
		require.NoError(t, err)

		assert.Equal(t, "10220000000000001", FacebookProfile(data).ID)
	})

	t.Run("ignores fields of the wrong type", func(t *testing.T) {
		t.Parallel()

		data, err := decodeProfile([]byte(`{"id":"1","name":{"first":"x"},"email":true}`))
		require.NoError(t, err)

		p := FacebookProfile(data)
		assert.Empty(t, p.DisplayName)
		assert.Empty(t, p.Emails[0].Value)
	})
}

func TestDecodeProfile(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "not json", "null", `["id"]`, `{"id":`} {
		_, err := decodeProfile([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestStrategy_UserProfile(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and keeps raw payload", func(t *testing.T) {
		t.Parallel()

		fetch := &MockFetcher{}
		fetch.On("Get", mock.Anything, DefaultProfileURL, "token").Return([]byte(janeProfile), nil, nil).Once()
		s := newTestStrategy(t, Verify[*testUser](acceptAll), &MockExchanger{}, fetch)

		p, err := s.UserProfile(context.Background(), "token")
		require.NoError(t, err)

		assert.Equal(t, "facebook", p.Provider)
		assert.Equal(t, "42", p.ID)
		assert.Equal(t, "Jane Doe", p.DisplayName)
		assert.Empty(t, p.Name.GivenName)
		assert.Empty(t, p.Name.FamilyName)
		assert.Equal(t, []ProfileEmail{{Value: "jane@example.com"}}, p.Emails)
		assert.Equal(t, []byte(janeProfile), p.Raw)
		assert.Equal(t, "jane@example.com", p.JSON["email"])
	})

	t.Run("mapping is stable across attempts", func(t *testing.T) {
		t.Parallel()

		fetch := &MockFetcher{}
		fetch.On("Get", mock.Anything, DefaultProfileURL, mock.Anything).Return([]byte(janeProfile), nil, nil).Twice()
		s := newTestStrategy(t, Verify[*testUser](acceptAll), &MockExchanger{}, fetch)

		first, err := s.UserProfile(context.Background(), "token-1")
		require.NoError(t, err)
		second, err := s.UserProfile(context.Background(), "token-2")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("custom mapper", func(t *testing.T) {
		t.Parallel()

		fetch := &MockFetcher{}
		fetch.On("Get", mock.Anything, DefaultProfileURL, "token").Return([]byte(`{"sub":"abc"}`), nil, nil).Once()
		mapper := func(data map[string]any) *Profile {
			return &Profile{Provider: "custom", ID: stringField(data, "sub")}
		}
		s := newTestStrategy(t, Verify[*testUser](acceptAll), &MockExchanger{}, fetch, WithProfileMapper(mapper))

		p, err := s.UserProfile(context.Background(), "token")
		require.NoError(t, err)
		assert.Equal(t, "custom", p.Provider)
		assert.Equal(t, "abc", p.ID)
	})
}

func TestStrategy_ProfileURL(t *testing.T) {
	t.Parallel()

	t.Run("unchanged without fields or proof", func(t *testing.T) {
		t.Parallel()

		s, err := New(testConfig, Verify[*testUser](acceptAll))
		require.NoError(t, err)
		assert.Equal(t, DefaultProfileURL, s.profileURL("token"))
	})

	t.Run("adds fields and appsecret proof", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig
		cfg.ProfileURL = "https://graph.example.com/me?locale=en_US"
		cfg.ProfileFields = []string{"id", "name", "email"}
		cfg.EnableProof = true

		s, err := New(cfg, Verify[*testUser](acceptAll))
		require.NoError(t, err)

		u, err := url.Parse(s.profileURL("token"))
		require.NoError(t, err)

		mac := hmac.New(sha256.New, []byte("client-secret"))
		mac.Write([]byte("token"))

		q := u.Query()
		assert.Equal(t, "graph.example.com", u.Host)
		assert.Equal(t, "en_US", q.Get("locale"))
		assert.Equal(t, "id,name,email", q.Get("fields"))
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), q.Get("appsecret_proof"))
	})
}

func TestStrategy_UserProfile_HTTP(t *testing.T) {
	t.Parallel()

	t.Run("sends bearer token to profile endpoint", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			assert.Equal(t, "id,name", r.URL.Query().Get("fields"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(janeProfile))
		}))
		defer srv.Close()

		cfg := testConfig
		cfg.ProfileURL = srv.URL + "/me"
		cfg.ProfileFields = []string{"id", "name"}

		s, err := New(cfg, Verify[*testUser](acceptAll), WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		p, err := s.UserProfile(context.Background(), "token-123")
		require.NoError(t, err)
		assert.Equal(t, "42", p.ID)
		assert.Equal(t, "Jane Doe", p.DisplayName)
	})

	t.Run("non-2xx answer is a fetch failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token."}}`))
		}))
		defer srv.Close()

		cfg := testConfig
		cfg.ProfileURL = srv.URL + "/me"

		s, err := New(cfg, Verify[*testUser](acceptAll), WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		_, err = s.UserProfile(context.Background(), "bad-token")
		require.ErrorIs(t, err, ErrFetchProfile)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Contains(t, string(statusErr.Body), "Invalid OAuth access token.")
	})
}
