package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer is satisfied by *message.Printer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T looks up key through loc. Without a localizer the key itself is the
// format string, so components still render in tests and fallbacks.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	switch {
	case !ok:
		return ""
	case len(args) == 0:
		return format
	default:
		return fmt.Sprintf(format, args...)
	}
}
