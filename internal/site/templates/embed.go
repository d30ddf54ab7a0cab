// Package templates embeds the site's HTML templates. Each page is a
// standalone template named after its file and pulls the shared head, nav
// and footer blocks from layout.tmpl.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
