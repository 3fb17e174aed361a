package cli

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/client/config"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

type account struct {
	password string
	user     models.User
}

// fakeClient is an in-memory client.Client with seeded accounts.
type fakeClient struct {
	accounts map[string]account
	loggedIn *models.User

	cards      []api.StoreCard
	stats      *api.PlatformStatsResponse
	users      []models.User
	overview   *api.StoreOverview
	myStoreErr error
	listErr    error

	lastUserFilter  models.UserFilter
	lastStoreFilter models.StoreFilter
	lastRating      struct {
		storeID string
		value   int
	}
	createdUser  *models.UserInput
	createdStore *models.StoreInput
	signups      int
	closed       bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		accounts: map[string]account{
			"admin@example.com": {"Admin@1234", models.User{ID: "admin1", Name: "System Administrator Account", Email: "admin@example.com", Role: models.RoleAdmin}},
			"jane@example.com":  {"User@1234", models.User{ID: "user1", Name: "Jane Smith Regular User", Email: "jane@example.com", Role: models.RoleUser}},
			"john@store.com":    {"Owner@1234", models.User{ID: "owner1", Name: "John Doe Store Owner Account", Email: "john@store.com", Role: models.RoleStoreOwner}},
		},
	}
}

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) Signup(_ context.Context, in models.UserInput) (*models.User, error) {
	f.signups++
	if _, ok := f.accounts[in.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u := models.User{ID: "new", Name: in.Name, Email: in.Email, Address: in.Address, Role: models.RoleUser}
	f.accounts[in.Email] = account{in.Password, u}
	f.loggedIn = &u
	return &u, nil
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.User, error) {
	acc, ok := f.accounts[email]
	if !ok || acc.password != password {
		return nil, common.ErrInvalidCredentials
	}
	u := acc.user
	f.loggedIn = &u
	return &u, nil
}

func (f *fakeClient) Logout() { f.loggedIn = nil }

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	if f.loggedIn == nil {
		return nil, common.ErrorUnauthorized
	}
	return f.loggedIn, nil
}

func (f *fakeClient) ListUsers(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	f.lastUserFilter = filter
	return f.users, nil
}

func (f *fakeClient) CreateUser(_ context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.Collect(validation.ValidateName(in.Name), validation.ValidateRole(in.Role)); err != nil {
		return nil, err
	}
	f.createdUser = &in
	return &models.User{ID: "created", Email: in.Email, Role: models.Role(in.Role)}, nil
}

func (f *fakeClient) CreateStore(_ context.Context, in models.StoreInput) (*models.Store, error) {
	if in.OwnerID != "owner1" {
		return nil, validation.Errors{{Field: validation.FieldOwnerID, Kind: validation.OwnerInvalid}}
	}
	f.createdStore = &in
	return &models.Store{ID: "store9", Name: in.Name}, nil
}

func (f *fakeClient) PlatformStats(context.Context) (*api.PlatformStatsResponse, error) {
	return f.stats, nil
}

func (f *fakeClient) ListStores(_ context.Context, filter models.StoreFilter) ([]api.StoreCard, error) {
	f.lastStoreFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cards, nil
}

func (f *fakeClient) SubmitRating(_ context.Context, storeID string, value int) (*models.Rating, bool, error) {
	created := f.lastRating.storeID != storeID
	f.lastRating.storeID, f.lastRating.value = storeID, value
	return &models.Rating{StoreID: storeID, UserID: "user1", Value: value}, created, nil
}

func (f *fakeClient) StoreRatings(context.Context, string) (*api.StoreOverview, error) {
	return f.overview, nil
}

func (f *fakeClient) MyStore(context.Context) (*api.StoreOverview, error) {
	if f.myStoreErr != nil {
		return nil, f.myStoreErr
	}
	return f.overview, nil
}

// newTestApp builds an App over fc that reads the given input lines.
func newTestApp(fc *fakeClient, lines ...string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	cfg := &config.Config{ServerEndpointAddr: "bufnet", RequestTimeout: time.Second}
	return newApp(cfg, fc, in, &out), &out
}

func avg(v float64, n int) api.Average {
	return api.Average{Value: &v, Count: n}
}

func intPtr(v int) *int { return &v }
