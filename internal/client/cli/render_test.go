package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/validation"
)

func TestRatingBar(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, strings.Repeat(".", barWidth)},
		{50, strings.Repeat("#", 10) + strings.Repeat(".", 10)},
		{100, strings.Repeat("#", barWidth)},
		{33.3, strings.Repeat("#", 7) + strings.Repeat(".", 13)},
		{150, strings.Repeat("#", barWidth)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ratingBar(tt.percent), "percent %v", tt.percent)
	}
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "no ratings yet", formatAverage(api.Average{}))
	assert.Equal(t, "4.5 (2 ratings)", formatAverage(avg(4.5, 2)))
	assert.Equal(t, "3.0 (1 rating)", formatAverage(avg(3, 1)))
}

func TestRenderOverview_NoRatings(t *testing.T) {
	var out bytes.Buffer
	renderOverview(&out, &api.StoreOverview{Store: models.Store{Name: "Tech Paradise"}})

	s := out.String()
	assert.Contains(t, s, "Tech Paradise")
	assert.Contains(t, s, "no ratings yet")
	assert.Contains(t, s, "No ratings yet")
	assert.Equal(t, models.MaxRating, strings.Count(s, " 0%"))
}

func TestRenderOverview_WithRatings(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	o := &api.StoreOverview{
		Store:        models.Store{Name: "Premium Electronics"},
		Average:      avg(4.5, 2),
		Distribution: models.Distribution{0, 0, 0, 1, 1},
		Recent: []models.Rating{
			{UserID: "user2", Value: 4, CreatedAt: now},
			{UserID: "user1", Value: 5, CreatedAt: now.Add(-time.Hour)},
		},
	}

	var out bytes.Buffer
	renderOverview(&out, o)
	s := out.String()

	assert.Contains(t, s, "4.5 (2 ratings)")
	assert.Contains(t, s, "50%")
	assert.Contains(t, s, "2025-03-01 12:00")
	assert.Less(t, strings.Index(s, "user2"), strings.Index(s, "user1"))
}

func TestRenderStoreCards(t *testing.T) {
	cards := []api.StoreCard{
		{Store: models.Store{ID: "store1", Name: "Premium Electronics"}, Average: avg(4.5, 2), MyRating: intPtr(5)},
		{Store: models.Store{ID: "store3", Name: "Tech Paradise"}},
	}

	var out bytes.Buffer
	renderStoreCards(&out, cards, true)
	s := out.String()
	assert.Contains(t, s, "MY RATING")
	assert.Contains(t, s, "no ratings yet")

	out.Reset()
	renderStoreCards(&out, nil, false)
	assert.Equal(t, "No stores found\n", out.String())
}

func TestRenderPlatformStats_ListsEveryRole(t *testing.T) {
	var out bytes.Buffer
	renderPlatformStats(&out, &api.PlatformStatsResponse{
		TotalUsers:  6,
		UsersByRole: map[string]int{"admin": 1, "user": 2},
	})
	s := out.String()
	for _, r := range models.Roles() {
		assert.Contains(t, s, r.Title()+"s")
	}
}

func TestRenderError(t *testing.T) {
	var out bytes.Buffer
	renderError(&out, validation.Errors{{Field: validation.FieldName, Kind: validation.NameLengthInvalid}})
	assert.Equal(t, "  name: Name must be between 20 and 60 characters\n", out.String())

	out.Reset()
	renderError(&out, errors.New("boom"))
	assert.Equal(t, "error: boom\n", out.String())
}
