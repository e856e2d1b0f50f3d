package authcode

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Profile is the provider-agnostic user profile.
type Profile struct {
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Name        ProfileName    `json:"name"`
	Emails      []ProfileEmail `json:"emails"`

	// Raw is the response body as received, JSON its decoded form.
	Raw  []byte         `json:"-"`
	JSON map[string]any `json:"-"`
}

// ProfileName holds the best-effort name split. Empty means the provider
// did not send the field.
type ProfileName struct {
	FamilyName string `json:"familyName,omitempty"`
	GivenName  string `json:"givenName,omitempty"`
}

// ProfileEmail is one email address. Value is empty when the provider omitted it.
type ProfileEmail struct {
	Value string `json:"value"`
}

// ProfileMapper turns a decoded provider payload into a Profile.
// Raw and JSON are attached by the strategy afterwards.
type ProfileMapper func(data map[string]any) *Profile

// FacebookProfile maps a Graph API /me payload.
func FacebookProfile(data map[string]any) *Profile {
	return &Profile{
		Provider:    ProviderFacebook,
		ID:          stringField(data, "id"),
		DisplayName: stringField(data, "name"),
		Name: ProfileName{
			FamilyName: stringField(data, "family_name"),
			GivenName:  stringField(data, "given_name"),
		},
		Emails: []ProfileEmail{{Value: stringField(data, "email")}},
	}
}

// UserProfile loads and normalizes the profile of the token owner.
func (s *Strategy[U]) UserProfile(ctx context.Context, accessToken string) (*Profile, error) {
	body, _, err := s.fetcher.Get(ctx, s.profileURL(accessToken), accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchProfile, err)
	}

	data, err := decodeProfile(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseProfile, err)
	}

	profile := s.mapper(data)
	if profile == nil || profile.ID == "" {
		return nil, ErrMissingProfileID
	}
	profile.Raw = body
	profile.JSON = data

	return profile, nil
}

func (s *Strategy[U]) profileURL(accessToken string) string {
	if len(s.cfg.ProfileFields) == 0 && !s.cfg.EnableProof {
		return s.cfg.ProfileURL
	}

	u, err := url.Parse(s.cfg.ProfileURL)
	if err != nil {
		// Left for the fetcher to reject.
		return s.cfg.ProfileURL
	}
	q := u.Query()
	if len(s.cfg.ProfileFields) > 0 {
		q.Set("fields", strings.Join(s.cfg.ProfileFields, ","))
	}
	if s.cfg.EnableProof {
		q.Set("appsecret_proof", appSecretProof(accessToken, s.cfg.ClientSecret))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// appSecretProof signs the access token with the app secret as the Graph API expects.
func appSecretProof(accessToken, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}

func decodeProfile(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.New("expected JSON object, got null")
	}
	return data, nil
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
