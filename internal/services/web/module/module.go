// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/carousel/internal/services/web/gallery"
	"github.com/louisbranch/carousel/internal/services/web/templates"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the shared runtime inputs modules render with.
type Dependencies struct {
	Gallery gallery.Gallery
	Site    templates.SiteMetadata
	Now     func() time.Time
	Logger  *log.Logger
}

// Year returns the current calendar year for page chrome.
func (d Dependencies) Year() int {
	if d.Now == nil {
		return time.Now().Year()
	}
	return d.Now().Year()
}

// Log returns the dependency logger or the process default.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}
