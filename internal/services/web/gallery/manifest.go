package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the optional file that orders images and supplies alt text.
const ManifestName = "gallery.yaml"

type manifestEntry struct {
	File string `yaml:"file"`
	Alt  string `yaml:"alt"`
}

type manifest struct {
	Images []manifestEntry `yaml:"images"`
}

func loadManifest(fsys fs.FS) (manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return manifest{}, nil
	}
	if err != nil {
		return manifest{}, fmt.Errorf("read %s: %w", ManifestName, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	return m, nil
}

// apply orders paths with manifest entries first and returns alt text by path.
func (m manifest) apply(paths []string) ([]string, map[string]string, error) {
	alts := make(map[string]string, len(m.Images))
	if len(m.Images) == 0 {
		return paths, alts, nil
	}
	known := make(map[string]bool, len(paths))
	for _, p := range paths {
		known[p] = true
	}
	ordered := make([]string, 0, len(paths))
	listed := make(map[string]bool, len(m.Images))
	for _, entry := range m.Images {
		file := path.Clean(strings.TrimSpace(entry.File))
		if !known[file] {
			return nil, nil, fmt.Errorf("%s: unknown image %q", ManifestName, entry.File)
		}
		if listed[file] {
			return nil, nil, fmt.Errorf("%s: image %q listed twice", ManifestName, entry.File)
		}
		listed[file] = true
		ordered = append(ordered, file)
		alts[file] = strings.TrimSpace(entry.Alt)
	}
	for _, p := range paths {
		if !listed[p] {
			ordered = append(ordered, p)
		}
	}
	return ordered, alts, nil
}
