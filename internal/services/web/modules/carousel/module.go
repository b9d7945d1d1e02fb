// Package carousel serves the carousel fragment and its step routes.
package carousel

import (
	"net/http"

	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/platform/publichandler"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
)

// Module provides the carousel routes.
type Module struct {
	deps module.Dependencies
}

// New returns a carousel module over deps.Gallery.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "carousel" }

// Mount wires carousel route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(m.deps)))
	return module.Mount{Prefix: routepath.CarouselPrefix, Handler: mux}, nil
}
