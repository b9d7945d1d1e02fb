// Package i18n resolves request languages and localized printers for web handlers.
package i18n

import (
	"net/http"
	"strings"

	"github.com/louisbranch/carousel/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam lets a request force a language, ahead of Accept-Language.
const LangParam = "lang"

var (
	supported = catalog.Default().Tags()
	matcher   = language.NewMatcher(supported)
)

// Supported returns the languages the site has copy for.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ResolveTag picks the best supported language for the request.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return supported[0]
	}
	var prefs []language.Tag
	if forced := strings.TrimSpace(r.URL.Query().Get(LangParam)); forced != "" {
		if tag, err := language.Parse(forced); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if header := strings.TrimSpace(r.Header.Get("Accept-Language")); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
			prefs = append(prefs, tags...)
		}
	}
	if len(prefs) == 0 {
		return supported[0]
	}
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// ResolveLocalizer returns a printer and language tag for the request.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag := ResolveTag(r)
	return message.NewPrinter(tag), tag
}
