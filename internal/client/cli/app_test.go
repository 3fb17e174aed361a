package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

func TestDashboardFor_EveryRole(t *testing.T) {
	a, _ := newTestApp(newFakeClient())

	tests := []struct {
		role  models.Role
		title string
	}{
		{models.RoleAdmin, "Admin Dashboard"},
		{models.RoleUser, "Stores"},
		{models.RoleStoreOwner, "Store Owner Dashboard"},
	}
	for _, tt := range tests {
		d, err := DashboardFor(tt.role, a)
		require.NoError(t, err)
		assert.Equal(t, tt.title, d.Title())
	}

	_, err := DashboardFor(models.Role("guest"), a)
	assert.Error(t, err)
}

func TestApp_LoginFailureStaysAnonymous(t *testing.T) {
	a, out := newTestApp(newFakeClient(), "jane@example.com", "wrong")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, session.Anonymous, a.session.State())
	assert.Equal(t, "Available commands: signup, login, exit", a.Help())
	assert.NotContains(t, out.String(), "Logged in")
}

func TestApp_UserLoginShowsStoreCards(t *testing.T) {
	fc := newFakeClient()
	fc.cards = []api.StoreCard{
		{Store: models.Store{ID: "store1", Name: "Premium Electronics"}, Average: avg(4.5, 2), MyRating: intPtr(5)},
		{Store: models.Store{ID: "store3", Name: "Tech Paradise"}},
	}
	a, out := newTestApp(fc, "jane@example.com", "User@1234")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())

	s := out.String()
	assert.Contains(t, s, "Logged in as Jane Smith Regular User (User)")
	assert.Contains(t, s, "== Stores ==")
	assert.Contains(t, s, "Premium Electronics")
	assert.Contains(t, s, "no ratings yet")
	assert.Equal(t, []models.SearchField{models.SearchByName, models.SearchByAddress}, fc.lastStoreFilter.Fields)
	assert.Contains(t, a.Help(), "rate <store id> <1-5>")
	assert.Equal(t, "(jane@example.com user) ", a.getStatus())
}

func TestApp_UserRating(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(fc, "jane@example.com", "User@1234")
	require.NoError(t, a.Login(context.Background()))
	ctx := context.Background()

	handled, err := a.Exec(ctx, "rate", []string{"store3", "4"})
	require.True(t, handled)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Rating 4 submitted")

	handled, err = a.Exec(ctx, "rate", []string{"store3", "2"})
	require.True(t, handled)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Rating updated to 2")

	_, err = a.Exec(ctx, "rate", []string{"store3", "6"})
	assert.Error(t, err)
	_, err = a.Exec(ctx, "rate", []string{"store3", "five"})
	assert.Error(t, err)
	_, err = a.Exec(ctx, "rate", []string{"store3"})
	assert.Error(t, err)
	assert.Equal(t, 2, fc.lastRating.value)

	handled, err = a.Exec(ctx, "adduser", nil)
	assert.False(t, handled, "admin commands are not available to users")
	assert.NoError(t, err)
}

func TestApp_UserStoreSearch(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(fc, "jane@example.com", "User@1234")
	require.NoError(t, a.Login(context.Background()))

	_, err := a.Exec(context.Background(), "stores", []string{"main", "street"})
	require.NoError(t, err)
	assert.Equal(t, "main street", fc.lastStoreFilter.Query)
}

func TestApp_OwnerWithoutStore(t *testing.T) {
	fc := newFakeClient()
	fc.myStoreErr = common.ErrorNotFound
	a, out := newTestApp(fc, "john@store.com", "Owner@1234")

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "No store assigned")
}

func TestApp_OwnerOverview(t *testing.T) {
	fc := newFakeClient()
	fc.overview = &api.StoreOverview{
		Store:        models.Store{ID: "store1", Name: "Premium Electronics"},
		Average:      avg(4.5, 2),
		Distribution: models.Distribution{0, 0, 0, 1, 1},
		Recent:       []models.Rating{{UserID: "user2", Value: 4}, {UserID: "user1", Value: 5}},
	}
	a, out := newTestApp(fc, "john@store.com", "Owner@1234")

	require.NoError(t, a.Login(context.Background()))
	s := out.String()
	assert.Contains(t, s, "== Store Owner Dashboard ==")
	assert.Contains(t, s, "Premium Electronics")
	assert.Contains(t, s, "Rating distribution")
}

func TestApp_AdminCommands(t *testing.T) {
	fc := newFakeClient()
	fc.stats = &api.PlatformStatsResponse{TotalUsers: 6, TotalStores: 3, TotalRatings: 3, Average: avg(4, 3)}
	fc.users = []models.User{{ID: "owner1", Name: "John Doe Store Owner Account", Role: models.RoleStoreOwner, StoreID: "store1"}}

	a, out := newTestApp(fc,
		"admin@example.com", "Admin@1234",
		// adduser
		"Another Regular Platform User", "another@example.com", "2 Side Street", "Secret@12", "store_owner",
		// addstore with an invalid owner
		"Corner Shop", "corner@shop.com", "3 Corner", "user1",
	)
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Total users")

	_, err := a.Exec(ctx, "users", []string{"role=store_owner", "by=name,email", "john"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStoreOwner, fc.lastUserFilter.Role)
	assert.Equal(t, []models.SearchField{models.SearchByName, models.SearchByEmail}, fc.lastUserFilter.Fields)
	assert.Equal(t, "john", fc.lastUserFilter.Query)
	assert.Contains(t, out.String(), "Store Owner")

	_, err = a.Exec(ctx, "users", []string{"role=guest"})
	assert.Error(t, err)
	_, err = a.Exec(ctx, "stores", []string{"by=phone"})
	assert.Error(t, err)

	_, err = a.Exec(ctx, "adduser", nil)
	require.NoError(t, err)
	require.NotNil(t, fc.createdUser)
	assert.Equal(t, "store_owner", fc.createdUser.Role)
	assert.Equal(t, "Secret@12", fc.createdUser.Password)

	_, err = a.Exec(ctx, "addstore", nil)
	assert.Error(t, err)
	assert.Nil(t, fc.createdStore)
}

func TestApp_SignupValidatesAndLogsIn(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(fc,
		"Too Short", "not-an-email", "", "weak",
		"Jonathan Quincy Adams Junior", "jq@example.com", "1 Main Street", "Secret@12",
	)
	ctx := context.Background()

	err := a.Signup(ctx)
	require.Error(t, err)
	assert.Zero(t, fc.signups)
	assert.False(t, a.isLoggedIn())

	require.NoError(t, a.Signup(ctx))
	assert.Equal(t, 1, fc.signups)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, Jonathan Quincy Adams Junior!")
}

func TestApp_ExpiredTokenEndsSession(t *testing.T) {
	fc := newFakeClient()
	a, _ := newTestApp(fc, "jane@example.com", "User@1234")
	require.NoError(t, a.Login(context.Background()))

	fc.listErr = common.ErrTokenExpired
	_, err := a.Exec(context.Background(), "stores", nil)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	assert.False(t, a.isLoggedIn())
}

func TestApp_LogoutAndRun(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(fc, "login", "jane@example.com", "User@1234", "logout", "exit")

	a.Run(context.Background())

	assert.True(t, fc.closed)
	assert.False(t, a.isLoggedIn())
	assert.Nil(t, fc.loggedIn)
	assert.Contains(t, out.String(), "Logged out")
	assert.Contains(t, out.String(), "Bye!")
}

var _ client.Client = (*fakeClient)(nil)
