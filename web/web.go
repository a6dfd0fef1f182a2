// Package web embeds the catalog's HTML views and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// TemplatesPattern matches every view inside Templates.
const TemplatesPattern = "templates/*.html"

func Templates() fs.FS {
	return templates
}

// Static returns the static assets rooted at the asset directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
