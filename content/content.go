// Package content loads blog posts and standalone pages from markdown files
// with YAML frontmatter.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/posts"
)

// ErrPageNotFound is returned by LoadPage when no file backs the route.
var ErrPageNotFound = errors.New("page not found")

// Post is a blog post: list metadata plus the markdown body.
type Post struct {
	posts.Summary
	Tags       []string
	Body       string
	Date       time.Time
	SourcePath string
}

// Link returns the post's route.
func (p Post) Link() string {
	return "/blog/posts/" + p.Slug + "/"
}

type postMatter struct {
	Title         string   `yaml:"title"`
	Excerpt       string   `yaml:"excerpt"`
	Datetime      string   `yaml:"datetime"`
	Featured      bool     `yaml:"featured"`
	Category      string   `yaml:"category"`
	CoverImage    string   `yaml:"coverImage"`
	CoverImageAlt string   `yaml:"coverImageAlt"`
	Tags          []string `yaml:"tags"`
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts the datetime formats used in post frontmatter.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadPosts reads every .md and .mdx file directly inside dir, newest
// first. A missing directory yields no posts.
func LoadPosts(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read posts dir %s: %w", dir, err)
	}

	var out []Post
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".md" && ext != ".mdx") {
			continue
		}
		p, err := loadPost(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sortPosts(out)
	return out, nil
}

func loadPost(path string) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("read post %s: %w", path, err)
	}
	var m postMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return Post{}, fmt.Errorf("parse frontmatter %s: %w", path, err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = nav.FormatPageName(slug)
	}
	date, _ := ParseDate(m.Datetime)
	return Post{
		Summary: posts.Summary{
			Slug:          slug,
			Title:         title,
			Category:      strings.TrimSpace(m.Category),
			Excerpt:       strings.TrimSpace(m.Excerpt),
			Datetime:      m.Datetime,
			Featured:      m.Featured,
			CoverImage:    m.CoverImage,
			CoverImageAlt: m.CoverImageAlt,
		},
		Tags:       m.Tags,
		Body:       string(body),
		Date:       date,
		SourcePath: path,
	}, nil
}

// sortPosts orders by date descending; undated posts go last, ties by slug.
func sortPosts(ps []Post) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i].Date, ps[j].Date
		switch {
		case a.IsZero() != b.IsZero():
			return !a.IsZero()
		case !a.Equal(b):
			return a.After(b)
		default:
			return ps[i].Slug < ps[j].Slug
		}
	})
}

// Summaries returns the list metadata of ps, in order.
func Summaries(ps []Post) []posts.Summary {
	out := make([]posts.Summary, len(ps))
	for i, p := range ps {
		out[i] = p.Summary
	}
	return out
}
