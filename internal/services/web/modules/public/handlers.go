package public

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	"github.com/louisbranch/carousel/internal/services/web/platform/pagerender"
	"github.com/louisbranch/carousel/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.CarouselCursor(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.NewCarouselView(cursor)
	loc := h.Localizer(r)
	h.WritePage(w, r, pagerender.Page{
		Title: webtemplates.T(loc, "site.home.title"),
		Body: func(pc webtemplates.PageContext) templ.Component {
			return webtemplates.HomeContent(pc, view)
		},
	})
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}
