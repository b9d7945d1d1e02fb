// Package gallery discovers the carousel images served by the site.
//
// A gallery is loaded once at startup from a filesystem and is immutable
// afterwards; handlers build a ring.Cursor over it per request.
package gallery

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg" // registers the JPEG decoder for DecodeConfig
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/carousel/internal/platform/assets/imagecdn"
	"github.com/louisbranch/carousel/internal/platform/ring"
)

const (
	// DefaultMaxWidth bounds delivered image width in pixels.
	DefaultMaxWidth = 800
	// DefaultQuality is the delivery quality requested from transforming CDNs.
	DefaultQuality = 90
)

// ErrNoFilesystem reports a Load call without a source filesystem.
var ErrNoFilesystem = errors.New("gallery filesystem is required")

// Image is one displayable carousel item.
type Image struct {
	// ID is a stable identity key derived from Path.
	ID     string
	Path   string
	URL    string
	Width  int
	Height int
	Alt    string
}

// AspectRatio returns width over height, or 0 when dimensions are unknown.
func (i Image) AspectRatio() float64 {
	if i.Width <= 0 || i.Height <= 0 {
		return 0
	}
	return float64(i.Width) / float64(i.Height)
}

// Options controls how images are discovered and addressed.
type Options struct {
	// URLs resolves image addresses; the zero value serves from /static/images.
	URLs imagecdn.CDN
	// MaxWidth and Quality feed CDN delivery transforms.
	MaxWidth int
	Quality  int
}

// Gallery is an ordered, immutable set of images.
type Gallery struct {
	images []Image
}

// New builds a gallery from already-resolved images, mostly for tests.
func New(images []Image) Gallery {
	return Gallery{images: slices.Clone(images)}
}

// Len returns the number of images.
func (g Gallery) Len() int {
	return len(g.images)
}

// Images returns a copy of the ordered images.
func (g Gallery) Images() []Image {
	return slices.Clone(g.images)
}

// Cursor returns a cursor over the gallery positioned at start.
func (g Gallery) Cursor(start int) (*ring.Cursor[Image], error) {
	return ring.New(g.images, start)
}

// Load walks fsys for JPEG files and returns them ordered by the manifest,
// then by path.
func Load(fsys fs.FS, opts Options) (Gallery, error) {
	if fsys == nil {
		return Gallery{}, ErrNoFilesystem
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	urls := opts.URLs
	if urls == (imagecdn.CDN{}) {
		urls = imagecdn.New(localImagesBase)
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if isJPEG(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return Gallery{}, fmt.Errorf("walk gallery: %w", err)
	}
	slices.Sort(paths)

	manifest, err := loadManifest(fsys)
	if err != nil {
		return Gallery{}, err
	}
	paths, alts, err := manifest.apply(paths)
	if err != nil {
		return Gallery{}, err
	}

	images := make([]Image, 0, len(paths))
	for _, p := range paths {
		img, err := loadImage(fsys, p, urls, opts)
		if err != nil {
			return Gallery{}, err
		}
		img.Alt = alts[p]
		if img.Alt == "" {
			img.Alt = altFromPath(p)
		}
		images = append(images, img)
	}
	return Gallery{images: images}, nil
}

const localImagesBase = "/static/images"

func loadImage(fsys fs.FS, p string, urls imagecdn.CDN, opts Options) (Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return Image{}, fmt.Errorf("open image %s: %w", p, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode image %s: %w", p, err)
	}
	ext := path.Ext(p)
	url, err := urls.URL(imagecdn.Request{
		AssetID:   strings.TrimSuffix(p, ext),
		Extension: ext,
		Delivery:  &imagecdn.Delivery{WidthPX: opts.MaxWidth, Quality: opts.Quality},
	})
	if err != nil {
		return Image{}, fmt.Errorf("resolve image url %s: %w", p, err)
	}
	return Image{
		ID:     imageID(p),
		Path:   p,
		URL:    url,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func isJPEG(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

func imageID(p string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(p))
	return "img-" + strconv.FormatUint(h.Sum64(), 36)
}

func altFromPath(p string) string {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.TrimSpace(name)
}
