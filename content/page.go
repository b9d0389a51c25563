package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/eringen/folio/nav"
)

// Page formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatText     = "text"
)

// Page is a standalone page from the pages directory.
type Page struct {
	Name       string
	Title      string
	Body       string
	Format     string
	SourcePath string
}

type pageMatter struct {
	Title string `yaml:"title"`
}

// LoadPage resolves the route segment name under root. It looks for
// <name>/index.md, <name>/index.html, <name>.md and <name>.html, in that
// order, then for any other source the navigation would list for name.
// Sources that are neither markdown nor HTML are served as plain text.
func LoadPage(root, name string) (Page, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return Page{}, ErrPageNotFound
	}
	candidates := []string{
		filepath.Join(root, name, "index.md"),
		filepath.Join(root, name, "index.html"),
		filepath.Join(root, name+".md"),
		filepath.Join(root, name+".html"),
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Page{}, fmt.Errorf("read page %s: %w", path, err)
		}
		return parsePage(name, path, data)
	}

	path, err := nav.Source(root, name)
	if err != nil {
		return Page{}, fmt.Errorf("find page %s: %w", name, err)
	}
	if path == "" {
		return Page{}, ErrPageNotFound
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("read page %s: %w", path, err)
	}
	return parsePage(name, path, data)
}

func parsePage(name, path string, data []byte) (Page, error) {
	p := Page{
		Name:       name,
		Title:      nav.FormatPageName(name),
		SourcePath: path,
		Format:     FormatText,
		Body:       string(data),
	}
	switch filepath.Ext(path) {
	case ".md":
	case ".html", ".htm":
		p.Format = FormatHTML
		return p, nil
	default:
		return p, nil
	}
	var m pageMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return Page{}, fmt.Errorf("parse frontmatter %s: %w", path, err)
	}
	p.Format = FormatMarkdown
	p.Body = string(body)
	if t := strings.TrimSpace(m.Title); t != "" {
		p.Title = t
	}
	return p, nil
}
