// Package services contains server-side business logic: accounts and login,
// stores, the rating engine and the dashboard read models.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/auth"
	"github.com/dmitrijs2005/storerating/internal/server/config"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

// UserService handles account creation, credential checks and access token
// issuance.
type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
	now                         func() time.Time
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
		now:                         time.Now,
	}
}

// Signup registers a regular user. Whatever role the input carries is
// replaced with models.RoleUser.
func (s *UserService) Signup(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.ValidateUser(in); err != nil {
		return nil, err
	}
	return s.create(ctx, in, models.RoleUser)
}

// CreateUser is the admin path: any valid role may be assigned.
func (s *UserService) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	err := validation.Collect(
		validation.ValidateName(in.Name),
		validation.ValidateEmail(in.Email),
		validation.ValidateAddress(in.Address),
		validation.ValidatePassword(in.Password),
		validation.ValidateRole(in.Role),
	)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, in, models.Role(in.Role))
}

func (s *UserService) create(ctx context.Context, in models.UserInput, role models.Role) (*models.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	u, err := s.repomanager.Users().Create(ctx, &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Role:         role,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// FindUserByCredentials returns the user whose email matches exactly and
// whose password checks out. Unknown email and wrong password both yield
// common.ErrorNotFound.
func (s *UserService) FindUserByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// Login checks credentials and issues an access token carrying the user's id
// and role. Every failure to authenticate is common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.FindUserByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// IssueToken mints an access token for u.
func (s *UserService) IssueToken(u *models.User) (string, error) {
	token, err := auth.GenerateToken(u.ID, u.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withStore(ctx, u)
}

// ListUsers returns the users matching filter in registration order. Store
// owners come back with StoreID set when they own a store.
func (s *UserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	all, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	res := make([]*models.User, 0, len(all))
	for _, u := range all {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		values := map[models.SearchField]string{
			models.SearchByName:    u.Name,
			models.SearchByEmail:   u.Email,
			models.SearchByAddress: u.Address,
		}
		if !matchesQuery(values, filter.Fields, filter.Query) {
			continue
		}
		u, err := s.withStore(ctx, u)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, nil
}

func (s *UserService) withStore(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Role != models.RoleStoreOwner {
		return u, nil
	}
	st, err := s.repomanager.Stores().GetByOwner(ctx, u.ID)
	switch {
	case err == nil:
		u.StoreID = st.ID
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up store: %w", err)
	}
	return u, nil
}
