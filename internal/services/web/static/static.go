// Package static embeds the stylesheet and enhancement script served under
// /static/.
package static

import "embed"

// FS holds site.css and carousel.js.
//
//go:embed *.css *.js
var FS embed.FS
