package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	"golang.org/x/net/html"
	"golang.org/x/text/message"
)

type keyLocalizer map[string]string

func (l keyLocalizer) Sprintf(key message.Reference, args ...any) string {
	if s, ok := key.(string); ok {
		if v, ok := l[s]; ok {
			return v
		}
		return s
	}
	return ""
}

func render(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == tag }
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		b.WriteString(t.Data)
	}
	return b.String()
}

func sampleView() CarouselView {
	return CarouselView{
		ShowControls:    true,
		Index:           1,
		Total:           3,
		ImageKey:        "img-b",
		ImageURL:        "/static/images/b.jpg",
		Alt:             "harbor <at> dusk",
		Width:           800,
		Height:          600,
		PrevURL:         "/",
		NextURL:         "/?i=2",
		PrevFragmentURL: "/carousel/prev?i=1",
		NextFragmentURL: "/carousel/next?i=1",
	}
}

func TestCarouselRendersImageAndControls(t *testing.T) {
	t.Parallel()

	doc := render(t, Carousel(nil, sampleView()))

	imgs := findAll(doc, element("img"))
	if len(imgs) != 1 {
		t.Fatalf("img count = %d, want 1", len(imgs))
	}
	if got := attrValue(imgs[0], "src"); got != "/static/images/b.jpg" {
		t.Fatalf("img src = %q, want %q", got, "/static/images/b.jpg")
	}
	if got := attrValue(imgs[0], "alt"); got != "harbor <at> dusk" {
		t.Fatalf("img alt = %q", got)
	}
	figures := findAll(doc, element("figure"))
	if len(figures) != 1 || attrValue(figures[0], "data-key") != "img-b" {
		t.Fatalf("figure data-key missing: %v", figures)
	}

	links := findAll(doc, element("a"))
	if len(links) != 2 {
		t.Fatalf("control count = %d, want 2", len(links))
	}
	if got := attrValue(links[0], "data-fragment"); got != "/carousel/prev?i=1" {
		t.Fatalf("prev data-fragment = %q", got)
	}
	if got := attrValue(links[1], "href"); got != "/?i=2" {
		t.Fatalf("next href = %q", got)
	}
	if got := attrValue(links[0], "class"); got != "carousel-control carousel-prev" {
		t.Fatalf("prev class = %q, want %q", got, "carousel-control carousel-prev")
	}
	if got := attrValue(links[1], "class"); got != "carousel-control carousel-next" {
		t.Fatalf("next class = %q, want %q", got, "carousel-control carousel-next")
	}
	sections := findAll(doc, element("section"))
	if len(sections) != 1 || attrValue(sections[0], "data-index") != "1" || attrValue(sections[0], "data-total") != "3" {
		t.Fatalf("section position attributes missing: %v", sections)
	}
	if got := attrValue(imgs[0], "width"); got != "800" {
		t.Fatalf("img width = %q, want %q", got, "800")
	}
	if got := len(findAll(doc, element("path"))); got != 2 {
		t.Fatalf("chevron count = %d, want 2", got)
	}
}

func TestCarouselHidesControlsForSingleImage(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.ShowControls = false
	view.Total = 1
	doc := render(t, Carousel(nil, view))
	if got := len(findAll(doc, element("a"))); got != 0 {
		t.Fatalf("control count = %d, want 0", got)
	}
	if got := len(findAll(doc, element("img"))); got != 1 {
		t.Fatalf("img count = %d, want 1", got)
	}
}

func TestCarouselEmptyState(t *testing.T) {
	t.Parallel()

	loc := keyLocalizer{"site.carousel.empty": "No images yet."}
	doc := render(t, Carousel(loc, CarouselView{Empty: true}))
	if got := len(findAll(doc, element("img"))); got != 0 {
		t.Fatalf("img count = %d, want 0", got)
	}
	sections := findAll(doc, element("section"))
	if len(sections) != 1 || attrValue(sections[0], "id") != CarouselElementID {
		t.Fatalf("expected carousel section, got %v", sections)
	}
	if got := textContent(sections[0]); got != "No images yet." {
		t.Fatalf("empty text = %q", got)
	}
}

func TestLayoutWrapsChildrenWithHeadAndFooter(t *testing.T) {
	t.Parallel()

	page := PageContext{
		Lang:  "pt-BR",
		Loc:   keyLocalizer{"core.footer.built_with": "built"},
		Site:  SiteMetadata{Title: "Carousel", Description: "Photos", Author: "Louis"},
		Title: "Home",
		Year:  2026,
	}
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := w.Write([]byte("<p id=\"child\">hi</p>"))
		return err
	})
	ctx := templ.WithChildren(context.Background(), child)
	var buf bytes.Buffer
	if err := Layout(page).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	htmlNodes := findAll(doc, element("html"))
	if len(htmlNodes) != 1 || attrValue(htmlNodes[0], "lang") != "pt-BR" {
		t.Fatalf("html lang mismatch")
	}
	titles := findAll(doc, element("title"))
	if len(titles) != 1 || textContent(titles[0]) != "Home | Carousel" {
		t.Fatalf("title = %v", titles)
	}
	mains := findAll(doc, element("main"))
	if len(mains) != 1 || len(findAll(mains[0], func(n *html.Node) bool { return attrValue(n, "id") == "child" })) != 1 {
		t.Fatal("expected child inside main")
	}
	footers := findAll(doc, element("footer"))
	if len(footers) != 1 || !strings.Contains(textContent(footers[0]), "Louis") {
		t.Fatal("expected footer with author")
	}
}

func TestMetaTagsFallBackToSiteDescription(t *testing.T) {
	t.Parallel()

	tags := MetaTags(PageContext{
		Site:  SiteMetadata{Description: "site desc", Author: "@me"},
		Title: "Home",
		Meta:  []MetaTag{{Name: "robots", Content: "index"}},
	})
	if tags[0].Name != "description" || tags[0].Content != "site desc" {
		t.Fatalf("tags[0] = %+v", tags[0])
	}
	if last := tags[len(tags)-1]; last.Name != "robots" {
		t.Fatalf("last tag = %+v, want robots", last)
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page PageContext
		want string
	}{
		{PageContext{Title: "Home", Site: SiteMetadata{Title: "Site"}}, "Home | Site"},
		{PageContext{Site: SiteMetadata{Title: "Site"}}, "Site"},
		{PageContext{Title: "Home"}, "Home"},
	}
	for _, tc := range tests {
		if got := DocumentTitle(tc.page); got != tc.want {
			t.Fatalf("DocumentTitle() = %q, want %q", got, tc.want)
		}
	}
}

func TestErrorContentShowsStatusAndMessage(t *testing.T) {
	t.Parallel()

	doc := render(t, ErrorContent(PageContext{}, 404, "Page not found"))
	headings := findAll(doc, element("h1"))
	if len(headings) != 1 || textContent(headings[0]) != "404 Not Found" {
		t.Fatalf("heading = %v", headings)
	}
	if !strings.Contains(textContent(doc), "Page not found") {
		t.Fatal("expected message in body")
	}
}

func TestHomeContentIncludesCarousel(t *testing.T) {
	t.Parallel()

	loc := keyLocalizer{"site.home.heading": "Carousel Time"}
	doc := render(t, HomeContent(PageContext{Loc: loc}, sampleView()))
	headings := findAll(doc, element("h1"))
	if len(headings) != 1 || textContent(headings[0]) != "Carousel Time" {
		t.Fatalf("heading = %v", headings)
	}
	if got := len(findAll(doc, element("figure"))); got != 1 {
		t.Fatalf("figure count = %d, want 1", got)
	}
}

func TestNewCarouselViewFromCursor(t *testing.T) {
	t.Parallel()

	g := gallery.New([]gallery.Image{
		{ID: "img-a", URL: "/static/images/a.jpg", Alt: "a"},
		{ID: "img-b", URL: "/static/images/b.jpg", Alt: "b", Width: 4, Height: 3},
		{ID: "img-c", URL: "/static/images/c.jpg", Alt: "c"},
	})
	cursor, err := g.Cursor(0)
	if err != nil {
		t.Fatalf("Cursor() error = %v", err)
	}
	view := NewCarouselView(cursor)
	want := CarouselView{
		ShowControls:    true,
		Index:           0,
		Total:           3,
		ImageKey:        "img-a",
		ImageURL:        "/static/images/a.jpg",
		Alt:             "a",
		PrevURL:         "/?i=2",
		NextURL:         "/?i=1",
		PrevFragmentURL: "/carousel/prev",
		NextFragmentURL: "/carousel/next",
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("NewCarouselView() mismatch (-want +got):\n%s", diff)
	}

	empty, _ := gallery.New(nil).Cursor(0)
	if got := NewCarouselView(empty); !got.Empty {
		t.Fatalf("NewCarouselView(empty) = %+v, want Empty", got)
	}

	single, _ := gallery.New([]gallery.Image{{ID: "img-a"}}).Cursor(0)
	if got := NewCarouselView(single); got.ShowControls {
		t.Fatal("single image view shows controls")
	}
}

func TestCarouselOmitsUnknownDimensions(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Width, view.Height = 0, 0
	doc := render(t, Carousel(nil, view))
	imgs := findAll(doc, element("img"))
	if len(imgs) != 1 {
		t.Fatalf("img count = %d, want 1", len(imgs))
	}
	for _, key := range []string{"width", "height"} {
		for _, a := range imgs[0].Attr {
			if a.Key == key {
				t.Fatalf("img has %s = %q, want none", key, a.Val)
			}
		}
	}
}

func TestCarouselEscapesViewText(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.ImageKey = `"><script>alert(1)</script>`
	var buf bytes.Buffer
	if err := Carousel(nil, view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("rendered markup contains unescaped script: %s", buf.String())
	}
}

func TestLayoutDefaultsLangAndOmitsBlankAuthor(t *testing.T) {
	t.Parallel()

	doc := render(t, Layout(PageContext{Site: SiteMetadata{Title: "Carousel", Author: "  "}}))
	htmlNodes := findAll(doc, element("html"))
	if len(htmlNodes) != 1 || attrValue(htmlNodes[0], "lang") != "en" {
		t.Fatal("html lang = missing, want en")
	}
	authors := findAll(doc, func(n *html.Node) bool { return attrValue(n, "class") == "site-author" })
	if len(authors) != 0 {
		t.Fatalf("site-author count = %d, want 0", len(authors))
	}
	links := findAll(doc, element("link"))
	if len(links) != 1 || attrValue(links[0], "href") != "/static/site.css" {
		t.Fatalf("stylesheet link = %v", links)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "site.home.title"); got != "site.home.title" {
		t.Fatalf("T(nil, key) = %q, want %q", got, "site.home.title")
	}
	if got := T(nil, "%d of %d", 1, 3); got != "1 of 3" {
		t.Fatalf("T(nil, format) = %q, want %q", got, "1 of 3")
	}
	loc := keyLocalizer{"site.home.title": "Home"}
	if got := T(loc, "site.home.title"); got != "Home" {
		t.Fatalf("T(loc, key) = %q, want %q", got, "Home")
	}
}
