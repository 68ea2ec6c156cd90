package views

import "embed"

// FS holds the page templates, parsed by the Fiber html engine.
//
//go:embed *.html
var FS embed.FS
