package views

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/posts"
	"github.com/eringen/folio/site"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Layout is the data every full page shares: the site record, the current
// navigation and request-scoped bits such as the theme and CSRF token.
type Layout struct {
	Site   *site.Site
	Nav    []nav.Item
	Meta   PageMeta
	Path   string
	Theme  string
	CSRF   string
	Flash  string
	JSONLD string
}

// HomeData renders the landing page.
type HomeData struct {
	Layout
	Latest []posts.Summary
}

// BlogData renders the blog index and its HX partial.
type BlogData struct {
	Layout
	Filter   posts.FilterState
	Topics   []string
	Posts    []posts.Summary
	Featured []posts.Summary
}

// PostData renders a single post.
type PostData struct {
	Layout
	Post    content.Post
	Related []posts.Summary
}

// PageData renders a page discovered in the pages directory.
type PageData struct {
	Layout
	Page content.Page
}
