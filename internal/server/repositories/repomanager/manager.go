package repomanager

import (
	"github.com/dmitrijs2005/storerating/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/stores"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Stores() stores.Repository
	Ratings() ratings.Repository
}
