package carousel

import (
	"net/http"

	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CarouselPrefix+"{$}", h.handleFragment)
	mux.HandleFunc(http.MethodGet+" "+routepath.CarouselNext, h.handleNext)
	mux.HandleFunc(http.MethodGet+" "+routepath.CarouselPrev, h.handlePrev)
	mux.HandleFunc(routepath.CarouselNext, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
	mux.HandleFunc(routepath.CarouselPrev, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
	mux.HandleFunc(routepath.CarouselPrefix, h.WriteNotFound)
}
