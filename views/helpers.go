package views

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/posts"
)

// RelatedPosts returns up to max posts from all that share current's
// category, skipping current itself.
func RelatedPosts(current posts.Summary, all []posts.Summary, max int) []posts.Summary {
	if current.Category == "" {
		return nil
	}
	var related []posts.Summary
	for _, p := range all {
		if p.Slug == current.Slug || p.Category != current.Category {
			continue
		}
		related = append(related, p)
		if len(related) == max {
			break
		}
	}
	return related
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// TopicClass returns CSS classes for a topic pill, with active variant.
func TopicClass(active bool) string {
	if active {
		return "topic topic-active"
	}
	return "topic"
}

// NavHref makes in-page anchors absolute so they also work away from the
// home page.
func NavHref(u string) string {
	if strings.HasPrefix(u, "#") {
		return "/" + u
	}
	return u
}

// NavActive reports whether the nav entry u points at the page being
// rendered.
func NavActive(u, path string) bool {
	if strings.HasPrefix(u, "#") {
		return false
	}
	return strings.TrimSuffix(path, "/") == strings.TrimSuffix(u, "/")
}

// FormatDate renders a post datetime for humans, or returns it unchanged
// when it cannot be parsed.
func FormatDate(s string) string {
	t, ok := content.ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2, 2006")
}

// BlogQuery builds the blog index URL for a filter state.
func BlogQuery(search, topic string) string {
	v := url.Values{}
	if search != "" {
		v.Set("q", search)
	}
	if topic != "" && topic != posts.TopicAll {
		v.Set("topic", topic)
	}
	if len(v) == 0 {
		return "/blog/"
	}
	return "/blog/?" + v.Encode()
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.RenderMarkdown(&buf, src); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// safeURL passes through links with allowed schemes and replaces the rest.
func safeURL(s string) template.URL {
	if markdown.SafeURL(s) == "" {
		return "#"
	}
	return template.URL(strings.TrimSpace(s))
}

var funcs = template.FuncMap{
	"markdown":   renderMarkdown,
	"trusted":    func(s string) template.HTML { return template.HTML(s) },
	"jsonld":     func(s string) template.JS { return template.JS(s) },
	"safeURL":    safeURL,
	"external":   markdown.IsExternal,
	"topicClass": TopicClass,
	"navHref":    NavHref,
	"navActive":  NavActive,
	"formatDate": FormatDate,
	"blogQuery":  BlogQuery,
	"pathEscape": PathEscape,
	"join":       strings.Join,
	"year":       func() int { return time.Now().Year() },
}
