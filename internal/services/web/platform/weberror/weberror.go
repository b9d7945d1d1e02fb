// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	apperrors "github.com/louisbranch/carousel/internal/services/web/platform/errors"
	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/carousel/internal/services/web/platform/i18n"
	"github.com/louisbranch/carousel/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

// ShouldRenderPage reports whether status should use the error-page UX.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteError writes a localized error response. Not-found and server errors
// render the error page (or its fragment for HTMX); other statuses reply in
// plain text.
func WriteError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	message := PublicMessage(loc, err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Printf("web error: path=%s status=%d err=%v", requestPath(r), statusCode, err)
	}
	if !ShouldRenderPage(statusCode) {
		http.Error(w, message, statusCode)
		return
	}

	if httpx.IsHTMXRequest(r) {
		pc := pagerender.Context(r, deps, "", "")
		if renderErr := pagerender.WriteFragment(w, r, statusCode, webtemplates.ErrorContent(pc, statusCode, message)); renderErr != nil {
			http.Error(w, message, statusCode)
		}
		return
	}
	renderErr := pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		Meta:       []webtemplates.MetaTag{{Name: "robots", Content: "noindex"}},
		Body: func(pc webtemplates.PageContext) templ.Component {
			return webtemplates.ErrorContent(pc, statusCode, message)
		},
	})
	if renderErr != nil {
		http.Error(w, message, statusCode)
	}
}

// NotFound renders the localized not-found page.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "core.error.not_found", "page not found"), deps)
	})
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
