package carousel

import (
	"errors"
	"net/http"

	"github.com/louisbranch/carousel/internal/platform/otel"
	"github.com/louisbranch/carousel/internal/platform/ring"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	apperrors "github.com/louisbranch/carousel/internal/services/web/platform/errors"
	"github.com/louisbranch/carousel/internal/services/web/platform/httpx"
	"github.com/louisbranch/carousel/internal/services/web/platform/publichandler"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/carousel/internal/services/web/modules/carousel"

type direction string

const (
	forward  direction = "next"
	backward direction = "prev"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleFragment(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "carousel.render")
	defer span.End()
	r = r.WithContext(ctx)

	cursor, err := h.CarouselCursor(r)
	if err != nil {
		recordError(span, err)
		h.WriteError(w, r, err)
		return
	}
	span.SetAttributes(attribute.Int("carousel.index", cursor.Index()), attribute.Int("carousel.total", cursor.Len()))
	h.WriteFragment(w, r, webtemplates.Carousel(h.Localizer(r), webtemplates.NewCarouselView(cursor)))
}

func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	h.handleStep(w, r, forward)
}

func (h handlers) handlePrev(w http.ResponseWriter, r *http.Request) {
	h.handleStep(w, r, backward)
}

func (h handlers) handleStep(w http.ResponseWriter, r *http.Request, dir direction) {
	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "carousel.step",
		trace.WithAttributes(attribute.String("carousel.direction", string(dir))))
	defer span.End()
	r = r.WithContext(ctx)

	cursor, err := h.CarouselCursor(r)
	if err != nil {
		recordError(span, err)
		h.WriteError(w, r, err)
		return
	}
	from := cursor.Index()
	cursor.Observe(func(index int, img gallery.Image) {
		span.AddEvent("carousel.selected", trace.WithAttributes(
			attribute.Int("carousel.index", index),
			attribute.String("carousel.key", img.ID),
		))
	})
	if err := step(cursor, dir == forward); err != nil {
		recordError(span, err)
		h.WriteError(w, r, err)
		return
	}
	span.SetAttributes(
		attribute.Int("carousel.from", from),
		attribute.Int("carousel.index", cursor.Index()),
		attribute.Int("carousel.total", cursor.Len()),
	)

	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Home(cursor.Index()))
		return
	}
	h.WriteFragment(w, r, webtemplates.Carousel(h.Localizer(r), webtemplates.NewCarouselView(cursor)))
}

// step moves cursor one image forward or backward. Stepping an empty
// gallery is a not-found error.
func step(cursor *ring.Cursor[gallery.Image], ahead bool) error {
	move := cursor.Retreat
	if ahead {
		move = cursor.Advance
	}
	if _, err := move(); err != nil {
		if errors.Is(err, ring.ErrEmpty) {
			return apperrors.Wrap(apperrors.KindNotFound, "core.error.empty", "step carousel", err)
		}
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
