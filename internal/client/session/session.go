// Package session holds the client's current identity.
//
// A Session is either Anonymous or Authenticated. Login and Signup are the
// only ways in; Logout is the only way out and works from any state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrAlreadyAuthenticated = errors.New("already logged in, log out first")

// Backend performs the remote half of each transition. client.GRPCClient
// satisfies it.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, in models.UserInput) (*models.User, error)
	Logout()
}

type Session struct {
	backend Backend

	mu   sync.RWMutex
	user *models.User
}

func New(b Backend) *Session {
	return &Session{backend: b}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return Anonymous
	}
	return Authenticated
}

// User returns a copy of the authenticated user.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Login authenticates with email and password. On any credential mismatch
// the session stays Anonymous and common.ErrInvalidCredentials is returned.
// Transport failures are returned as they are.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	if s.State() == Authenticated {
		return models.User{}, ErrAlreadyAuthenticated
	}

	u, err := s.backend.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrorNotFound) {
			return models.User{}, common.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	s.setUser(u)
	return *u, nil
}

// Signup validates in locally, registers it and logs the new user in.
// Field errors are reported before anything is sent.
func (s *Session) Signup(ctx context.Context, in models.UserInput) (models.User, error) {
	if s.State() == Authenticated {
		return models.User{}, ErrAlreadyAuthenticated
	}

	if err := validation.ValidateUser(in); err != nil {
		return models.User{}, err
	}

	u, err := s.backend.Signup(ctx, in)
	if err != nil {
		return models.User{}, err
	}

	s.setUser(u)
	return *u, nil
}

func (s *Session) Logout() {
	s.backend.Logout()
	s.setUser(nil)
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}
