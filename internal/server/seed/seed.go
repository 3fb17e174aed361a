// Package seed loads the demo data the server starts with.
//
// User and store fields bypass input validation: several demo names are
// shorter than the signup minimum and are kept as they are. Relations are
// still enforced: a store's owner must be a store owner without another
// store, and a rating needs a value in range, an existing store and an
// existing user. Passwords are stored in plain text in the fixtures and
// hashed while applying.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/auth"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type User struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Address  string `yaml:"address"`
	Role     string `yaml:"role"`
}

type Store struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	OwnerID string `yaml:"owner_id"`
}

type Rating struct {
	ID      string `yaml:"id"`
	StoreID string `yaml:"store_id"`
	UserID  string `yaml:"user_id"`
	Value   int    `yaml:"rating"`
}

type Fixtures struct {
	Users   []User   `yaml:"users"`
	Stores  []Store  `yaml:"stores"`
	Ratings []Rating `yaml:"ratings"`
}

// Load reads fixtures from path, or the embedded demo set when path is empty.
func Load(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures: %w", err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	for _, u := range f.Users {
		if _, err := models.ParseRole(u.Role); err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
	}

	return &f, nil
}

// Apply writes f into the repositories. Every record gets createdAt = now.
func Apply(ctx context.Context, m repomanager.RepositoryManager, f *Fixtures, bcryptCost int, now time.Time) error {
	for _, u := range f.Users {
		role, err := models.ParseRole(u.Role)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.ID, err)
		}

		hash, err := auth.HashPassword(u.Password, bcryptCost)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.ID, err)
		}

		_, err = m.Users().Create(ctx, &models.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			Address:      u.Address,
			Role:         role,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("user %s: %w", u.ID, err)
		}
	}

	for _, s := range f.Stores {
		owner, err := m.Users().GetByID(ctx, s.OwnerID)
		if err != nil {
			return fmt.Errorf("store %s: owner %s: %w", s.ID, s.OwnerID, err)
		}
		if owner.Role != models.RoleStoreOwner {
			return fmt.Errorf("store %s: owner %s has role %s", s.ID, s.OwnerID, owner.Role)
		}
		if _, err := m.Stores().GetByOwner(ctx, s.OwnerID); err == nil {
			return fmt.Errorf("store %s: owner %s: %w", s.ID, s.OwnerID, common.ErrorAlreadyExists)
		}

		_, err = m.Stores().Create(ctx, &models.Store{
			ID:        s.ID,
			Name:      s.Name,
			Email:     s.Email,
			Address:   s.Address,
			OwnerID:   s.OwnerID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("store %s: %w", s.ID, err)
		}
	}

	for _, r := range f.Ratings {
		if fe := validation.ValidateRating(r.Value); fe != nil {
			return fmt.Errorf("rating %s: %w", r.ID, fe)
		}
		if _, err := m.Stores().GetByID(ctx, r.StoreID); err != nil {
			return fmt.Errorf("rating %s: store %s: %w", r.ID, r.StoreID, err)
		}
		if _, err := m.Users().GetByID(ctx, r.UserID); err != nil {
			return fmt.Errorf("rating %s: user %s: %w", r.ID, r.UserID, err)
		}
		_, _, err := m.Ratings().Upsert(ctx, &models.Rating{
			ID:        r.ID,
			StoreID:   r.StoreID,
			UserID:    r.UserID,
			Value:     r.Value,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("rating %s: %w", r.ID, err)
		}
	}

	return nil
}
