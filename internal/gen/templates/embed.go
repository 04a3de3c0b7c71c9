package templates

import "embed"

// FS exposes the templates used by floatconsts gen.
//
//go:embed *.go.tpl
var FS embed.FS
