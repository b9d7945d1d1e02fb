package publichandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

func TestWriteNotFoundRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	req := httptest.NewRequest(http.MethodGet, "/nope?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	base.WriteNotFound(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Página não encontrada") {
		t.Fatalf("body missing localized message: %q", body)
	}
}

func TestWritePageFallsBackToErrorOnRenderFailure(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), pagerender.Page{
		Body: func(webtemplates.PageContext) templ.Component {
			return templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
		},
	})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestLocalizerUsesRequestLanguage(t *testing.T) {
	t.Parallel()

	loc := NewBase(module.Dependencies{}).Localizer(httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if got := loc.Sprintf("site.home.heading"); got != "Hora do Carrossel" {
		t.Fatalf("Sprintf(site.home.heading) = %q", got)
	}
}
