// handlers.go - Shared handler state
// Handlers receive their dependencies explicitly instead of reaching
// for globals, so tests can wire isolated instances.

package handlers // Declares the package name

import ( // Import required packages
	"go-payraise-backend/config" // Project config
	"go-payraise-backend/store"  // Record store
)

// Handler carries the dependencies every endpoint needs.
type Handler struct {
	Store *store.Store   // Record store (applies field encryption)
	Cfg   *config.Config // Config (JWT secret)
}

// New - Creates the handler set over the given store and config.
func New(st *store.Store, cfg *config.Config) *Handler {
	return &Handler{Store: st, Cfg: cfg}
}
