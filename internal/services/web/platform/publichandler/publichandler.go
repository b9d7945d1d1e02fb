// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/carousel/internal/platform/ring"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	apperrors "github.com/louisbranch/carousel/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/carousel/internal/services/web/platform/i18n"
	"github.com/louisbranch/carousel/internal/services/web/platform/pagerender"
	"github.com/louisbranch/carousel/internal/services/web/platform/weberror"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteFragment, WriteNotFound and
// WriteError.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base over deps.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Dependencies returns the shared module dependencies.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// Localizer resolves the request printer.
func (Base) Localizer(r *http.Request) webtemplates.Localizer {
	loc, _ := webi18n.ResolveLocalizer(r)
	return loc
}

// WritePage renders a full page, falling back to an error page when
// rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, b.deps, page); err != nil {
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "core.error.internal", "render page", err))
	}
}

// WriteFragment renders a bare component.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "core.error.internal", "render fragment", err))
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.NotFound(b.deps).ServeHTTP(w, r)
}

// WriteError renders err with its mapped status.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, err, b.deps)
}

// CarouselCursor positions a cursor over the gallery at the request's index
// query value. Malformed or out-of-range indexes are invalid input.
func (b Base) CarouselCursor(r *http.Request) (*ring.Cursor[gallery.Image], error) {
	index := 0
	if r != nil && r.URL != nil {
		parsed, err := routepath.ParseIndex(r.URL.Query())
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.bad_index", "parse carousel index", err)
		}
		index = parsed
	}
	cursor, err := b.deps.Gallery.Cursor(index)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "core.error.bad_index", "position carousel", err)
	}
	return cursor, nil
}
