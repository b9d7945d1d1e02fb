// Package imagecdn resolves image URLs for locally served or CDN-hosted assets.
package imagecdn

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrAssetIDRequired = errors.New("asset id is required")
	ErrBaseURLRequired = errors.New("asset base url is required")
)

const cloudinaryHost = "res.cloudinary.com"

// Delivery describes the rendered size and quality.
type Delivery struct {
	WidthPX int
	// Quality is 1-100; zero lets the CDN choose.
	Quality int
}

// Request identifies one image and optional transforms.
type Request struct {
	AssetID   string
	Extension string
	Delivery  *Delivery
}

// CDN builds URLs under one base URL.
//
// Cloudinary bases get delivery transforms; any other base is flat and ignores
// them.
type CDN struct {
	base       string
	transforms bool
}

// New returns a CDN rooted at baseURL, which may be absolute or a path.
func New(baseURL string) CDN {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	transforms := false
	if parsed, err := url.Parse(base); err == nil && strings.EqualFold(parsed.Host, cloudinaryHost) {
		transforms = true
	}
	return CDN{base: base, transforms: transforms}
}

// Transforms reports whether the CDN resizes images on delivery.
func (c CDN) Transforms() bool {
	return c.transforms
}

// URL resolves the address of one asset.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.Trim(strings.TrimSpace(req.AssetID), "/")
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	if c.base == "" {
		return "", ErrBaseURLRequired
	}
	name := escapePath(assetID) + normalizeExtension(req.Extension)
	if !c.transforms || req.Delivery == nil {
		return c.base + "/" + name, nil
	}
	return c.base + "/" + deliveryTransform(*req.Delivery) + "/" + name, nil
}

func deliveryTransform(d Delivery) string {
	quality := "q_auto"
	if d.Quality > 0 && d.Quality <= 100 {
		quality = "q_" + strconv.Itoa(d.Quality)
	}
	parts := []string{"f_auto", quality, "dpr_auto"}
	if d.WidthPX > 0 {
		parts = append(parts, "c_limit", "w_"+strconv.Itoa(d.WidthPX))
	}
	return strings.Join(parts, ",")
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func escapePath(assetID string) string {
	parts := strings.Split(assetID, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
