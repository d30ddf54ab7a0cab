// Package static embeds the site's public assets.
package static

import "embed"

//go:embed styles.css
var FS embed.FS
