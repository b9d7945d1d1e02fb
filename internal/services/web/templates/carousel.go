package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"github.com/louisbranch/carousel/internal/platform/ring"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
)

// CarouselElementID is the element swapped by progressive enhancement.
const CarouselElementID = "carousel"

// CarouselView is the render model for one carousel selection.
type CarouselView struct {
	Empty        bool
	ShowControls bool
	Index        int
	Total        int
	ImageKey     string
	ImageURL     string
	Alt          string
	Width        int
	Height       int
	// PrevURL and NextURL are full-page fallbacks; the fragment URLs return
	// only this component.
	PrevURL         string
	NextURL         string
	PrevFragmentURL string
	NextFragmentURL string
}

// NewCarouselView builds the view for the cursor's current selection.
func NewCarouselView(cursor *ring.Cursor[gallery.Image]) CarouselView {
	img, err := cursor.Current()
	if err != nil {
		return CarouselView{Empty: true}
	}
	index, total := cursor.Index(), cursor.Len()
	prev, next := ring.Prev(index, total), ring.Next(index, total)
	return CarouselView{
		ShowControls:    cursor.Navigable(),
		Index:           index,
		Total:           total,
		ImageKey:        img.ID,
		ImageURL:        img.URL,
		Alt:             img.Alt,
		Width:           img.Width,
		Height:          img.Height,
		PrevURL:         routepath.Home(prev),
		NextURL:         routepath.Home(next),
		PrevFragmentURL: routepath.CarouselStepPrev(index),
		NextFragmentURL: routepath.CarouselStepNext(index),
	}
}

const chevronPath = "M5 0.7071067811865475 L12.292893218813452 8 L5 15.292893218813452"
