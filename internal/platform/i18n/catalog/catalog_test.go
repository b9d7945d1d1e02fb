package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.NamespaceMessages("en-US", CoreNamespace)); got == 0 {
		t.Fatalf("expected en-US core namespace messages")
	}
}

func TestEmbeddedLocalesDefineTheSameKeys(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, want %d", locale, len(messages), len(base))
		}
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en-US/site.yaml": {Data: []byte("locale: en-US\nnamespace: site\nmessages:\n  core.bad: nope\n")},
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.good: ok\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  a.key: a\n")},
		"locales/en-US/site.yaml": {Data: []byte("locale: en-US\nnamespace: site\nmessages:\n  a.key: b\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsMismatchedPath(t *testing.T) {
	t.Parallel()

	tests := map[string]fstest.MapFS{
		"locale mismatch": {
			"locales/en-US/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  a: b\n")},
		},
		"namespace mismatch": {
			"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: site\nmessages:\n  a: b\n")},
		},
		"missing base locale": {
			"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  a: b\n")},
		},
		"empty messages": {
			"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\n")},
		},
		"malformed yaml": {
			"locales/en-US/core.yaml": {Data: []byte("locale: [en-US\n")},
		},
		"no files": {},
	}
	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en-US/site.yaml": {Data: []byte("locale: en-US\nnamespace: site\nmessages:\n  site.only_en: English\n  site.both: Both\n")},
		"locales/pt-BR/site.yaml": {Data: []byte("locale: pt-BR\nnamespace: site\nmessages:\n  site.both: Ambos\n")},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "site.both"); !ok || got != "Ambos" {
		t.Fatalf("Message(pt-BR, site.both) = %q, %t", got, ok)
	}
	if got, ok := bundle.Message("pt-BR", "site.only_en"); !ok || got != "English" {
		t.Fatalf("Message(pt-BR, site.only_en) = %q, %t", got, ok)
	}
	if _, ok := bundle.Message("pt-BR", "site.missing"); ok {
		t.Fatal("Message(pt-BR, site.missing) ok = true, want false")
	}
}

func TestRegisterWithAddsBaseLanguageTags(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en-US/site.yaml": {Data: []byte("locale: en-US\nnamespace: site\nmessages:\n  site.greeting: Hello\n")},
		"locales/pt-BR/site.yaml": {Data: []byte("locale: pt-BR\nnamespace: site\nmessages:\n  site.greeting: Olá\n")},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	builder := xcatalog.NewBuilder()
	if err := bundle.RegisterWith(builder); err != nil {
		t.Fatalf("RegisterWith() error = %v", err)
	}
	printer := message.NewPrinter(language.Portuguese, message.Catalog(builder))
	if got := printer.Sprintf("site.greeting"); got != "Olá" {
		t.Fatalf("Sprintf(site.greeting) = %q, want %q", got, "Olá")
	}
}

func TestTagsPutsBaseLocaleFirst(t *testing.T) {
	t.Parallel()

	tags := Default().Tags()
	if len(tags) < 2 {
		t.Fatalf("Tags() = %v, want at least two tags", tags)
	}
	if tags[0].String() != BaseLocale {
		t.Fatalf("Tags()[0] = %q, want %q", tags[0].String(), BaseLocale)
	}
}
