package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/carousel/internal/services/web/module"
)

// ComposeInput carries the modules and extra handlers to mount.
type ComposeInput struct {
	PublicModules []module.Module
	// Assets are non-module mounts, such as static file servers. They share
	// the prefix namespace with modules.
	Assets []module.Mount
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountHandler(root, feature.ID(), prefix, mount.Handler, seen); err != nil {
			return nil, err
		}
	}

	for _, asset := range input.Assets {
		id := "assets" + asset.Prefix
		prefix := strings.TrimSpace(asset.Prefix)
		if err := validatePrefix(prefix); err != nil {
			return nil, fmt.Errorf("asset mount has invalid prefix %q: %w", asset.Prefix, err)
		}
		if asset.Handler == nil {
			return nil, fmt.Errorf("asset mount %q: handler is required", prefix)
		}
		if err := mountHandler(root, id, prefix, asset.Handler, seen); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountHandler(root *http.ServeMux, id, prefix string, handler http.Handler, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, prefix, previous)
	}
	seen[prefix] = id
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
