package services

import (
	"strings"

	"github.com/dmitrijs2005/storerating/internal/models"
)

// matchesQuery reports whether any of the selected fields contains query,
// ignoring case. No fields selected means all of them; an empty query
// matches everything.
func matchesQuery(values map[models.SearchField]string, fields []models.SearchField, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if len(fields) == 0 {
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
		return false
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(values[f]), q) {
			return true
		}
	}
	return false
}
