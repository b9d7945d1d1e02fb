package carousel

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/carousel/internal/services/web/gallery"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
	"golang.org/x/net/html"
)

func testGallery(n int) gallery.Gallery {
	images := make([]gallery.Image, 0, n)
	for i := range n {
		name := string(rune('a' + i))
		images = append(images, gallery.Image{
			ID:  "img-" + name,
			URL: "/static/images/" + name + ".jpg",
			Alt: name,
		})
	}
	return gallery.New(images)
}

func mountedHandler(t *testing.T, g gallery.Gallery) http.Handler {
	t.Helper()
	mount, err := New(module.Dependencies{Gallery: g}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.CarouselPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.CarouselPrefix)
	}
	return mount.Handler
}

func serve(h http.Handler, target string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func selectedKey(t *testing.T, body string) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	var key string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "figure" {
			for _, a := range n.Attr {
				if a.Key == "data-key" {
					key = a.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return key
}

func TestFragmentRendersSelectedImage(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(3))
	rr := serve(h, routepath.Carousel(2), false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := selectedKey(t, rr.Body.String()); got != "img-c" {
		t.Fatalf("selected = %q, want %q", got, "img-c")
	}
	if strings.Contains(rr.Body.String(), "<!doctype html>") {
		t.Fatal("fragment rendered a full document")
	}
}

func TestFragmentRejectsBadIndex(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(3))
	for _, target := range []string{"/carousel/?i=3", "/carousel/?i=-1", "/carousel/?i=abc"} {
		if rr := serve(h, target, false); rr.Code != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestStepReturnsFragmentForHTMX(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(4))
	tests := []struct {
		target string
		want   string
	}{
		{target: routepath.CarouselStepNext(0), want: "img-b"},
		{target: routepath.CarouselStepNext(3), want: "img-a"},
		{target: routepath.CarouselStepPrev(0), want: "img-d"},
		{target: routepath.CarouselStepPrev(2), want: "img-b"},
	}
	for _, tc := range tests {
		rr := serve(h, tc.target, true)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", tc.target, rr.Code, http.StatusOK)
		}
		if got := selectedKey(t, rr.Body.String()); got != tc.want {
			t.Fatalf("GET %s selected = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestStepRedirectsWithoutHTMX(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(3))
	tests := []struct {
		target string
		want   string
	}{
		{target: routepath.CarouselStepNext(1), want: "/?i=2"},
		{target: routepath.CarouselStepNext(2), want: "/"},
		{target: routepath.CarouselStepPrev(0), want: "/?i=2"},
	}
	for _, tc := range tests {
		rr := serve(h, tc.target, false)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("GET %s status = %d, want %d", tc.target, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != tc.want {
			t.Fatalf("GET %s Location = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestEmptyGallery(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, gallery.New(nil))
	rr := serve(h, routepath.CarouselPrefix, false)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "carousel-empty") {
		t.Fatalf("body missing empty state: %q", rr.Body.String())
	}
	for _, target := range []string{routepath.CarouselNext, routepath.CarouselPrev} {
		if rr := serve(h, target, true); rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
}

func TestSingleImageHasNoControls(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(1))
	rr := serve(h, routepath.CarouselStepNext(0), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if got := selectedKey(t, body); got != "img-a" {
		t.Fatalf("selected = %q, want %q", got, "img-a")
	}
	if strings.Contains(body, "carousel-control") {
		t.Fatalf("single image rendered controls: %q", body)
	}
}

func TestRoutesMethodContract(t *testing.T) {
	t.Parallel()

	h := mountedHandler(t, testGallery(2))
	req := httptest.NewRequest(http.MethodPost, routepath.CarouselNext, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
	if rr := serve(h, "/carousel/unknown", false); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestRoutesRegisterAlongsideMethodFallbacks(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("registerRoutes() panicked: %v", r)
			}
		}()
		registerRoutes(mux, handlers{})
	}()

	tests := []struct {
		method string
		target string
		status int
	}{
		{method: http.MethodPost, target: routepath.CarouselPrev, status: http.StatusMethodNotAllowed},
		{method: http.MethodPost, target: "/carousel/unknown", status: http.StatusNotFound},
		{method: http.MethodGet, target: "/carousel/unknown", status: http.StatusNotFound},
	}
	h := mountedHandler(t, testGallery(2))
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))
		if rr.Code != tc.status {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.target, rr.Code, tc.status)
		}
	}
}
