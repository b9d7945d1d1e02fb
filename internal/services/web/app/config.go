package app

import module "github.com/louisbranch/carousel/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules []module.Module
	Assets        []module.Mount
}
