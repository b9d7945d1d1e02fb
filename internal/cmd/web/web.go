// Package web parses site flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/carousel/internal/platform/assets/imagecdn"
	entrypoint "github.com/louisbranch/carousel/internal/platform/cmd"
	"github.com/louisbranch/carousel/internal/services/web"
	"github.com/louisbranch/carousel/internal/services/web/gallery"
	webtemplates "github.com/louisbranch/carousel/internal/services/web/templates"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	ImagesDir       string `env:"IMAGES_DIR" envDefault:"images"`
	AssetBaseURL    string `env:"ASSET_BASE_URL"`
	ImageMaxWidth   int    `env:"IMAGE_MAX_WIDTH" envDefault:"800"`
	ImageQuality    int    `env:"IMAGE_QUALITY" envDefault:"90"`
	SiteTitle       string `env:"SITE_TITLE" envDefault:"Carousel"`
	SiteDescription string `env:"SITE_DESCRIPTION" envDefault:"A simple image carousel built with Go."`
	SiteAuthor      string `env:"SITE_AUTHOR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ImagesDir, "images-dir", cfg.ImagesDir, "Directory holding the carousel JPEG images")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Image CDN base URL; images are served locally when empty")
	fs.IntVar(&cfg.ImageMaxWidth, "image-max-width", cfg.ImageMaxWidth, "Maximum delivered image width in pixels")
	fs.IntVar(&cfg.ImageQuality, "image-quality", cfg.ImageQuality, "Delivered image quality for transforming CDNs")
	fs.StringVar(&cfg.SiteTitle, "site-title", cfg.SiteTitle, "Site title")
	fs.StringVar(&cfg.SiteDescription, "site-description", cfg.SiteDescription, "Site description for search and social previews")
	fs.StringVar(&cfg.SiteAuthor, "site-author", cfg.SiteAuthor, "Site author handle")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		g, imagesFS, err := loadGallery(os.DirFS(cfg.ImagesDir), cfg)
		if err != nil {
			return fmt.Errorf("load gallery from %s: %w", cfg.ImagesDir, err)
		}
		log.Printf("gallery loaded: images=%d dir=%s delivery=%s", g.Len(), cfg.ImagesDir, deliveryMode(cfg))

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Gallery:  g,
			ImagesFS: imagesFS,
			Site: webtemplates.SiteMetadata{
				Title:       cfg.SiteTitle,
				Description: cfg.SiteDescription,
				Author:      cfg.SiteAuthor,
			},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// loadGallery reads images from dir. The returned filesystem is nil when a
// CDN delivers the images.
func loadGallery(dir fs.FS, cfg Config) (gallery.Gallery, fs.FS, error) {
	opts := gallery.Options{MaxWidth: cfg.ImageMaxWidth, Quality: cfg.ImageQuality}
	served := dir
	if base := strings.TrimSpace(cfg.AssetBaseURL); base != "" {
		opts.URLs = imagecdn.New(base)
		served = nil
	}
	g, err := gallery.Load(dir, opts)
	if err != nil {
		return gallery.Gallery{}, nil, err
	}
	return g, served, nil
}

// deliveryMode names how image URLs are served: "local", "cdn", or
// "cdn-transform" when the CDN resizes on delivery.
func deliveryMode(cfg Config) string {
	base := strings.TrimSpace(cfg.AssetBaseURL)
	switch {
	case base == "":
		return "local"
	case imagecdn.New(base).Transforms():
		return "cdn-transform"
	default:
		return "cdn"
	}
}
