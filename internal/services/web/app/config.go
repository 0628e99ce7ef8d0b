package app

import module "github.com/louisbranch/coursefront/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules    []module.Module
	ProtectedModules []module.Module
}
