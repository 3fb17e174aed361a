package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/dmitrijs2005/storerating/internal/models"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodec_OmitsPasswordHash(t *testing.T) {
	data, err := jsonCodec{}.Marshal(&UserResponse{User: models.User{ID: "u1", PasswordHash: "secret"}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	var out UserResponse
	require.NoError(t, jsonCodec{}.Unmarshal(data, &out))
	assert.Equal(t, "u1", out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAverage_Conversion(t *testing.T) {
	unrated := FromAverage(models.Average{})
	assert.Nil(t, unrated.Value)
	assert.False(t, unrated.Model().Rated())

	rated := FromAverage(models.Average{Value: 4.5, Count: 2})
	require.NotNil(t, rated.Value)
	assert.Equal(t, 4.5, *rated.Value)
	assert.Equal(t, models.Average{Value: 4.5, Count: 2}, rated.Model())
}

func TestAverage_WireFormOfNoRatings(t *testing.T) {
	data, err := jsonCodec{}.Marshal(FromAverage(models.Average{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"count":0}`, string(data))
}

func TestSearchFields(t *testing.T) {
	got := SearchFields([]string{"name", "bogus", "address"})
	assert.Equal(t, []models.SearchField{models.SearchByName, models.SearchByAddress}, got)
	assert.Empty(t, SearchFields(nil))
}

func TestServiceDesc(t *testing.T) {
	assert.Equal(t, "/storerating.v1.RatingService/Login", FullMethod(MethodLogin))
	assert.Len(t, RatingServiceDesc.Methods, 12)

	seen := map[string]bool{}
	for _, m := range RatingServiceDesc.Methods {
		assert.False(t, seen[m.MethodName], m.MethodName)
		seen[m.MethodName] = true
		assert.NotNil(t, m.Handler)
	}
}
