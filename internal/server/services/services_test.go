package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/storerating/internal/server/config"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/server/seed"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	rm        *repomanager.InMemoryRepositoryManager
	users     *UserService
	stores    *StoreService
	ratings   *RatingService
	dashboard *DashboardService
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
}

// newEnv builds the services over a fresh in-memory store, seeded with the
// demo fixtures when withSeed is set.
func newEnv(t *testing.T, withSeed bool) *testEnv {
	t.Helper()

	rm := repomanager.NewInMemoryRepositoryManager()
	if withSeed {
		f, err := seed.Load("")
		require.NoError(t, err)
		require.NoError(t, seed.Apply(context.Background(), rm, f, bcrypt.MinCost, testNow))
	}

	users := NewUserService(rm, testConfig())
	stores := NewStoreService(rm)
	ratings := NewRatingService(rm)

	return &testEnv{
		rm:        rm,
		users:     users,
		stores:    stores,
		ratings:   ratings,
		dashboard: NewDashboardService(users, stores, ratings),
	}
}

// fixedClock returns a clock starting at start that advances by one second on
// every call.
func fixedClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}
