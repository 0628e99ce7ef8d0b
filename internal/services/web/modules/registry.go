package modules

import (
	"github.com/louisbranch/coursefront/internal/services/web/modules/course"
	"github.com/louisbranch/coursefront/internal/services/web/modules/cta"
	"github.com/louisbranch/coursefront/internal/services/web/modules/language"
	"github.com/louisbranch/coursefront/internal/services/web/modules/reviews"
	"github.com/louisbranch/coursefront/internal/services/web/modules/session"
)

// DefaultPublicModules returns the modules served to every visitor.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		course.New(deps),
		cta.New(deps),
		language.New(deps),
		session.New(deps),
	}
}

// DefaultProtectedModules returns the modules that require a signed-in
// visitor.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		reviews.New(deps),
	}
}
