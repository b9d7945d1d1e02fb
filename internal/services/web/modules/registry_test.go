package modules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	module "github.com/louisbranch/carousel/internal/services/web/module"
	"github.com/louisbranch/carousel/internal/services/web/routepath"
)

func TestDefaultPublicModules(t *testing.T) {
	t.Parallel()

	var ids, prefixes []string
	for _, m := range DefaultPublicModules(module.Dependencies{}) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("Mount(%s) error = %v", m.ID(), err)
		}
		ids = append(ids, m.ID())
		prefixes = append(prefixes, mount.Prefix)
	}
	if diff := cmp.Diff([]string{"public", "carousel"}, ids); diff != "" {
		t.Fatalf("module ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{routepath.Root, routepath.CarouselPrefix}, prefixes); diff != "" {
		t.Fatalf("module prefixes mismatch (-want +got):\n%s", diff)
	}
}
