// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/carousel/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

// Page describes a full-document response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Meta        []webtemplates.MetaTag
	// Body renders inside the layout's <main>; it receives the resolved
	// page context so it can localize.
	Body func(webtemplates.PageContext) templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Context resolves the shared page context for r.
func Context(r *http.Request, deps module.Dependencies, title, description string) webtemplates.PageContext {
	loc, tag := webi18n.ResolveLocalizer(r)
	return webtemplates.PageContext{
		Lang:        tag.String(),
		Loc:         loc,
		Site:        deps.Site,
		Title:       title,
		Description: description,
		Year:        deps.Year(),
	}
}

// WritePage renders page inside the site layout. The document is buffered so
// a render failure never leaves a partial response.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	pc := Context(r, deps, page.Title, page.Description)
	pc.Meta = page.Meta
	var body templ.Component = emptyComponent{}
	if page.Body != nil {
		body = page.Body(pc)
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(pc).Render(ctx, &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

// WriteFragment renders a component without the document shell, for
// progressive-enhancement swaps.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
