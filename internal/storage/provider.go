// Package storage provides access to the snippet catalog.
package storage

import (
	"github.com/ja-he/snippet/internal/model"
)

// CatalogProvider is the abstracted catalog provider, which can be
// implemented over various storage systems.
type CatalogProvider interface {
	// Load reads the whole catalog.
	Load() (*model.Catalog, error)
}
