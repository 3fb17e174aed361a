package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
)

func seeded(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	for _, s := range []*models.Store{
		{ID: "store1", Name: "Premium Electronics", Email: "contact@premiumelectronics.com", OwnerID: "owner1"},
		{ID: "store2", Name: "Fashion Hub", Email: "info@fashionhub.com", OwnerID: "owner2"},
		{ID: "store3", Name: "Tech Paradise", Email: "hello@techparadise.com", OwnerID: "owner3"},
	} {
		_, err := repo.Create(context.Background(), s)
		require.NoError(t, err)
	}
	return repo
}

func TestGetByOwner(t *testing.T) {
	repo := seeded(t)

	tests := []struct {
		name    string
		owner   string
		want    string
		wantErr error
	}{
		{name: "owner2", owner: "owner2", want: "Fashion Hub"},
		{name: "owner1", owner: "owner1", want: "Premium Electronics"},
		{name: "not an owner", owner: "user1", wantErr: common.ErrorNotFound},
		{name: "empty", owner: "", wantErr: common.ErrorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByOwner(context.Background(), tt.owner)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestGetByOwner_FirstWins(t *testing.T) {
	repo := seeded(t)
	_, err := repo.Create(context.Background(), &models.Store{Name: "Second", OwnerID: "owner1"})
	require.NoError(t, err)

	got, err := repo.GetByOwner(context.Background(), "owner1")
	require.NoError(t, err)
	assert.Equal(t, "store1", got.ID)
}

func TestCreate(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Store{Name: "New Store", OwnerID: "owner9"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, &models.Store{ID: "store1", Name: "Dup"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Store", got.Name)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	list, err := seeded(t).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"store1", "store2", "store3"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
