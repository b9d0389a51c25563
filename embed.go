package folio

import (
	"embed"
	"io/fs"
	"mime"
	"path/filepath"
)

// EmbeddedAssets contains static assets shipped with the engine:
// folio.css, folio.js, favicon.svg, robots.txt
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// embeddedPublic are served under /public/.
var embeddedPublic = []string{"folio.css", "folio.js"}

func embeddedFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}

func mimeByName(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
