package folio

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sectionRoutes are the config-driven pages every site has.
var sectionRoutes = []string{"/", "/about/", "/portfolio/", "/projects/", "/blog/"}

// pageRoutes lists every HTML route: sections, discovered pages and posts.
func (a *App) pageRoutes(ps []content.Post) []string {
	routes := append([]string(nil), sectionRoutes...)
	for _, it := range a.Nav.Dynamic() {
		routes = append(routes, strings.TrimSuffix(it.URL, "/")+"/")
	}
	for _, p := range ps {
		routes = append(routes, p.Link())
	}
	return routes
}

func (a *App) renderSitemap(c echo.Context, ps []content.Post) error {
	base := a.BaseURL()
	lastMod := make(map[string]string, len(ps))
	for _, p := range ps {
		if !p.Date.IsZero() {
			lastMod[p.Link()] = p.Date.Format("2006-01-02")
		}
	}
	var urls []sitemapURL
	for _, route := range a.pageRoutes(ps) {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, route),
			LastMod: lastMod[route],
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
