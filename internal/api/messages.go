package api

import (
	"time"

	"github.com/dmitrijs2005/storerating/internal/models"
)

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse answers both Signup and Login.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type MeRequest struct{}

type UserResponse struct {
	User models.User `json:"user"`
}

type ListUsersRequest struct {
	Role   string   `json:"role,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Query  string   `json:"query,omitempty"`
}

type ListUsersResponse struct {
	Users []models.User `json:"users"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID string `json:"owner_id"`
}

type StoreResponse struct {
	Store models.Store `json:"store"`
}

type ListStoresRequest struct {
	Fields []string `json:"fields,omitempty"`
	Query  string   `json:"query,omitempty"`
}

type ListStoresResponse struct {
	Stores []StoreCard `json:"stores"`
}

// Average carries models.Average. A nil Value means the store has no ratings.
type Average struct {
	Value *float64 `json:"value"`
	Count int      `json:"count"`
}

// StoreCard is a store with its average; MyRating is set only when the caller
// has rated it.
type StoreCard struct {
	Store    models.Store `json:"store"`
	Average  Average      `json:"average"`
	MyRating *int         `json:"my_rating,omitempty"`
}

type StoreRatingsRequest struct {
	StoreID string `json:"store_id"`
}

type MyStoreRequest struct{}

// StoreOverview lists a store's aggregates and its ratings newest first.
type StoreOverview struct {
	Store        models.Store        `json:"store"`
	Average      Average             `json:"average"`
	Distribution models.Distribution `json:"distribution"`
	Recent       []models.Rating     `json:"recent"`
}

type SubmitRatingRequest struct {
	StoreID string `json:"store_id"`
	Rating  int    `json:"rating"`
}

type SubmitRatingResponse struct {
	Rating  models.Rating `json:"rating"`
	Created bool          `json:"created"`
}

type PlatformStatsRequest struct{}

type PlatformStatsResponse struct {
	TotalUsers   int            `json:"total_users"`
	TotalStores  int            `json:"total_stores"`
	TotalRatings int            `json:"total_ratings"`
	UsersByRole  map[string]int `json:"users_by_role"`
	Average      Average        `json:"average"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// FromAverage converts a to its wire form.
func FromAverage(a models.Average) Average {
	if !a.Rated() {
		return Average{}
	}
	v := a.Value
	return Average{Value: &v, Count: a.Count}
}

// Model converts a back; a nil Value or zero Count yields the unrated average.
func (a Average) Model() models.Average {
	if a.Value == nil || a.Count == 0 {
		return models.Average{}
	}
	return models.Average{Value: *a.Value, Count: a.Count}
}

// SearchFields converts wire field names, dropping unknown ones.
func SearchFields(names []string) []models.SearchField {
	res := make([]models.SearchField, 0, len(names))
	for _, n := range names {
		switch f := models.SearchField(n); f {
		case models.SearchByName, models.SearchByEmail, models.SearchByAddress:
			res = append(res, f)
		}
	}
	return res
}
