// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	Root           = "/"
	Health         = "/health"
	StaticPrefix   = "/static/"
	ImagesPrefix   = "/static/images/"
	CarouselPrefix = "/carousel/"
	CarouselNext   = "/carousel/next"
	CarouselPrev   = "/carousel/prev"
)

// IndexParam carries the selected carousel position in query strings.
const IndexParam = "i"

// ErrInvalidIndex reports an index query value that is not a non-negative integer.
var ErrInvalidIndex = errors.New("index must be a non-negative integer")

// ParseIndex reads IndexParam from query. A missing or blank value selects 0.
func ParseIndex(query url.Values) (int, error) {
	raw := strings.TrimSpace(query.Get(IndexParam))
	if raw == "" {
		return 0, nil
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, ErrInvalidIndex
	}
	return index, nil
}

// Home returns the home page route selecting image index.
func Home(index int) string {
	return withIndex(Root, index)
}

// Carousel returns the carousel fragment route at index.
func Carousel(index int) string {
	return withIndex(CarouselPrefix, index)
}

// CarouselStepNext returns the route that advances from index.
func CarouselStepNext(index int) string {
	return withIndex(CarouselNext, index)
}

// CarouselStepPrev returns the route that retreats from index.
func CarouselStepPrev(index int) string {
	return withIndex(CarouselPrev, index)
}

func withIndex(path string, index int) string {
	if index <= 0 {
		return path
	}
	values := url.Values{}
	values.Set(IndexParam, strconv.Itoa(index))
	return path + "?" + values.Encode()
}
