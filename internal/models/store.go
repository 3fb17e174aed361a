package models

import "time"

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID string
}

// StoreFilter narrows ListStores. An empty Fields list searches name, email
// and address; an empty Query matches every store.
type StoreFilter struct {
	Fields []SearchField
	Query  string
}
