package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/site"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absoluteURL resolves ref (usually a site-relative asset path) against base.
func absoluteURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func person(s *site.Site, base string) map[string]interface{} {
	p := map[string]interface{}{
		"@type":    "Person",
		"name":     s.Personal.FullName,
		"jobTitle": s.Personal.JobTitle,
		"url":      BuildURL(base),
	}
	var sameAs []string
	for _, l := range s.Social.Links() {
		sameAs = append(sameAs, l.URL)
	}
	if len(sameAs) > 0 {
		p["sameAs"] = sameAs
	}
	return p
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema authored by
// the site owner.
func WebsiteJsonLD(s *site.Site, base string) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        s.Metadata.SiteName,
		"url":         BuildURL(base),
		"description": s.Metadata.Description,
		"author":      person(s, base),
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post content.Post, s *site.Site, base string) string {
	postURL := BuildURL(base, "blog", "posts", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Excerpt,
		"url":         postURL,
		"author":      person(s, base),
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !post.Date.IsZero() {
		data["datePublished"] = post.Date.Format("2006-01-02")
	}
	if post.Category != "" {
		data["articleSection"] = post.Category
	}
	if post.CoverImage != "" {
		data["image"] = absoluteURL(base, post.CoverImage)
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
