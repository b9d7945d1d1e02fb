package modules

import (
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/modules/carousel"
	"github.com/louisbranch/carousel/internal/services/web/modules/public"
)

// DefaultPublicModules returns the web modules mounted by the server.
func DefaultPublicModules(deps module.Dependencies) []Module {
	return []Module{
		public.New(deps),
		carousel.New(deps),
	}
}
