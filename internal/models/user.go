package models

import "time"

// User is a registered account. PasswordHash is never sent over the wire.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	StoreID      string    `json:"store_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInput is a candidate user as submitted by the signup form or an admin.
type UserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

// SearchField names a text column the dashboards can search in.
type SearchField string

const (
	SearchByName    SearchField = "name"
	SearchByEmail   SearchField = "email"
	SearchByAddress SearchField = "address"
)

// UserFilter narrows ListUsers. Zero value lists everyone.
type UserFilter struct {
	Role   Role
	Fields []SearchField
	Query  string
}
