package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authcode"
)

// infoRegistered is the verify info for a first sign-in.
const infoRegistered = "registered"

type user struct {
	ID         uuid.UUID `json:"id"`
	FacebookID string    `json:"facebook_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// userStore keeps users in memory, keyed by Facebook id.
type userStore struct {
	mu    sync.Mutex
	byFID map[string]*user
}

func newUserStore() *userStore {
	return &userStore{byFID: make(map[string]*user)}
}

// verify signs in or registers the profile owner. Without a profile there is
// nothing to key the account on, so the attempt is rejected.
func (s *userStore) verify(_ context.Context, _ authcode.Tokens, p *authcode.Profile) (*user, any, error) {
	if p == nil {
		return nil, "profile required", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.byFID[p.ID]; ok {
		return u, nil, nil
	}

	u := &user{
		ID:         uuid.New(),
		FacebookID: p.ID,
		Name:       p.DisplayName,
		CreatedAt:  time.Now().UTC(),
	}
	if len(p.Emails) > 0 {
		u.Email = p.Emails[0].Value
	}
	s.byFID[p.ID] = u

	return u, infoRegistered, nil
}
