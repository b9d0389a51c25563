// Package nav builds the site header navigation: a fixed list of in-page
// anchors followed by entries discovered from the pages directory.
package nav

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item is a single navigation entry.
type Item struct {
	URL       string `json:"url"`
	Text      string `json:"text"`
	Icon      string `json:"svgPath,omitempty"`
	IsDynamic bool   `json:"isDynamic,omitempty"`
}

// IconPaths are SVG path data for the navigation icons.
var IconPaths = map[string]string{
	"whoami":  "M12 2a5 5 0 1 0 5 5 5 5 0 0 0-5-5zm0 8a3 3 0 1 1 3-3 3 3 0 0 1-3 3zm9 11v-1a7 7 0 0 0-7-7h-4a7 7 0 0 0-7 7v1h2v-1a5 5 0 0 1 5-5h4a5 5 0 0 1 5 5v1z",
	"blog":    "M19.875 3H4.125C2.953 3 2 3.897 2 5v14c0 1.103.953 2 2.125 2h15.75C21.047 21 22 20.103 22 19V5c0-1.103-.953-2-2.125-2zM6 7h6v6H6zm7 8H6v2h12v-2h-4zm1-4h4v2h-4zm0-4h4v2h-4z",
	"contact": "M20.563 3.34a1.002 1.002 0 0 0-.989-.079l-17 8a1 1 0 0 0 .026 1.821L8 15.445v6.722l5.836-4.168 4.764 2.084a1 1 0 0 0 1.399-.85l1-15a1.005 1.005 0 0 0-.436-.893z",
	"default": "M14,2H6A2,2 0 0,0 4,4V20A2,2 0 0,0 6,22H18A2,2 0 0,0 20,20V8L14,2M18,20H6V4H13V9H18V20Z",
}

// StaticItems returns the hand-declared entries, in display order.
func StaticItems() []Item {
	return []Item{
		{URL: "#whoami", Text: "Who am i?", Icon: IconPaths["whoami"]},
		{URL: "#blog", Text: "Blog", Icon: IconPaths["blog"]},
		{URL: "#contact", Text: "Contact", Icon: IconPaths["contact"]},
	}
}

// Directories under the pages root that never become nav entries.
var excludeDirs = map[string]bool{
	"api":       true,
	"blog":      true,
	"_app":      true,
	"_document": true,
	"404":       true,
}

// File stems (name without the final extension) reserved by the site.
var excludeStems = map[string]bool{
	"index":       true,
	"_app":        true,
	"_document":   true,
	"404":         true,
	"sitemap.xml": true,
}

// Editor and backup leftovers.
var excludeSuffixes = []string{".backup", ".bak", ".temp", ".tmp", ".orig", "~"}

// FormatPageName turns a route segment into display text:
// "my-cool_page" becomes "My Cool Page".
func FormatPageName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English, cases.NoLower).String(name)
}

// Discover lists the immediate children of root and returns one dynamic
// entry per routable page, in lexicographic order. Any filesystem error
// yields an empty list together with the error.
func Discover(root string) ([]Item, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return []Item{}, fmt.Errorf("scan pages %s: %w", root, err)
	}

	items := []Item{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if excludeDirs[name] || strings.HasPrefix(name, ".") {
				continue
			}
			index, err := indexFile(filepath.Join(root, name))
			if err != nil {
				return []Item{}, fmt.Errorf("scan pages %s: %w", root, err)
			}
			if index != "" {
				items = append(items, dynamicItem(name))
			}
			continue
		}
		if skipFile(name) {
			continue
		}
		items = append(items, dynamicItem(stem(name)))
	}
	return items, nil
}

// All returns the static entries followed by those discovered under root.
// Discovery failures leave only the static entries.
func All(root string) []Item {
	dynamic, _ := Discover(root)
	return append(StaticItems(), dynamic...)
}

func dynamicItem(segment string) Item {
	return Item{
		URL:       "/" + segment,
		Text:      FormatPageName(segment),
		Icon:      IconPaths["default"],
		IsDynamic: true,
	}
}

// Source returns the file backing the entry Discover reports for segment
// under root: <segment>/index.* first, then a top-level <segment>.* file.
// It returns "" when no such entry would be discovered.
func Source(root, segment string) (string, error) {
	if segment == "" || strings.HasPrefix(segment, ".") || strings.ContainsAny(segment, `/\`) {
		return "", nil
	}
	dir := filepath.Join(root, segment)
	if fi, err := os.Stat(dir); err == nil && fi.IsDir() && !excludeDirs[segment] {
		index, err := indexFile(dir)
		if err != nil {
			return "", err
		}
		if index != "" {
			return filepath.Join(dir, index), nil
		}
	}
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && !skipFile(e.Name()) && stem(e.Name()) == segment {
			return filepath.Join(root, e.Name()), nil
		}
	}
	return "", nil
}

// indexFile returns the name of the first index.* source file in dir, or ""
// when there is none.
func indexFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && !leftover(e.Name()) && stem(e.Name()) == "index" {
			return e.Name(), nil
		}
	}
	return "", nil
}

func skipFile(name string) bool {
	return leftover(name) || excludeStems[stem(name)]
}

// leftover reports hidden files and editor or backup copies.
func leftover(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, suffix := range excludeSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
