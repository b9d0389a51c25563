package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func isHX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// layout collects the data every full page needs. It may write the session
// cookie, so call it before rendering.
func (a *App) layout(c echo.Context, meta views.PageMeta) views.Layout {
	md := a.Site.Metadata
	if meta.Title == "" {
		meta.Title = md.Title
	} else {
		meta.Title += " | " + md.SiteName
	}
	if meta.Description == "" {
		meta.Description = md.Description
	}
	if meta.URL == "" {
		meta.URL = BuildURL(a.BaseURL(), c.Request().URL.Path)
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.Image == "" && a.Site.Images.OGImage != "" {
		meta.Image = absoluteURL(a.BaseURL(), a.Site.Images.OGImage)
	}
	return views.Layout{
		Site:   a.Site,
		Nav:    a.Nav.Items(),
		Meta:   meta,
		Path:   c.Request().URL.Path,
		Theme:  a.theme(c),
		CSRF:   CsrfToken(c),
		Flash:  popFlash(c),
		JSONLD: WebsiteJsonLD(a.Site, a.BaseURL()),
	}
}
