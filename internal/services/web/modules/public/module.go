// Package public serves the home page, health probe and not-found fallback.
package public

import (
	"net/http"

	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/platform/publichandler"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
)

// Module provides unauthenticated root routes.
type Module struct {
	deps module.Dependencies
}

// New returns a public module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers at the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
