package folio

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/posts"
	"github.com/eringen/folio/views"
)

const relatedPostCount = 3

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ ahead of the user's static dir.
	embedded := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS()))))
	for _, name := range embeddedPublic {
		e.GET("/public/"+name, embedded)
	}
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleStaticFile("favicon.svg"))
	e.GET("/robots.txt", a.handleStaticFile("robots.txt"))

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/api/navigation", a.handleNavigation)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/portfolio/", a.handlePortfolio)
	e.GET("/projects/", a.handleProjects)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/posts/:slug/", a.handlePost)
	e.GET("/:page/", a.handlePage)

	e.POST("/contact/", a.handleContact)
	e.POST("/theme/", a.handleTheme)
}

func (a *App) handleHome(c echo.Context) error {
	sums, err := a.Cache.Summaries()
	if err != nil {
		return err
	}
	latest := sums[:min(len(sums), a.Site.Blog.PostsPerPage)]
	return Render(c, a.Views.Home(views.HomeData{
		Layout: a.layout(c, views.PageMeta{}),
		Latest: latest,
	}))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.layout(c, views.PageMeta{Title: a.Site.About.Title})))
}

func (a *App) handlePortfolio(c echo.Context) error {
	return Render(c, a.Views.Portfolio(a.layout(c, views.PageMeta{Title: "Portfolio"})))
}

func (a *App) handleProjects(c echo.Context) error {
	return Render(c, a.Views.Projects(a.layout(c, views.PageMeta{Title: "Projects"})))
}

// blogState builds the filter state from the q and topic query parameters.
// An unknown topic leaves the filter on TopicAll.
func (a *App) blogState(c echo.Context) *posts.State {
	st := posts.NewState(a.Site.Topics())
	st.SetSearchText(c.QueryParam("q"))
	if topic := c.QueryParam("topic"); topic != "" {
		if err := st.SetSelectedTopic(topic); err != nil {
			c.Logger().Debugf("blog: %v: %q", err, topic)
		}
	}
	return st
}

func (a *App) handleBlog(c echo.Context) error {
	sums, err := a.Cache.Summaries()
	if err != nil {
		return err
	}
	st := a.blogState(c)
	d := views.BlogData{
		Filter:   st.Current(),
		Topics:   st.Topics(),
		Posts:    st.Visible(sums),
		Featured: st.FeaturedVisible(sums),
	}
	if isHX(c) && c.QueryParam("partial") == "posts" {
		d.Layout.Site = a.Site
		return Render(c, a.Views.BlogPosts(d))
	}
	d.Layout = a.layout(c, views.PageMeta{
		Title:       a.Site.BlogIntro.Title,
		Description: a.Site.BlogIntro.Description,
	})
	return Render(c, a.Views.Blog(d))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	sums, err := a.Cache.Summaries()
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Excerpt,
		OGType:      "article",
	}
	if post.CoverImage != "" {
		meta.Image = absoluteURL(a.BaseURL(), post.CoverImage)
	}
	l := a.layout(c, meta)
	l.JSONLD = BlogPostingJsonLD(post, a.Site, a.BaseURL())
	return Render(c, a.Views.Post(views.PostData{
		Layout:  l,
		Post:    post,
		Related: views.RelatedPosts(post.Summary, sums, relatedPostCount),
	}))
}

// handlePage serves a page from the pages directory. Only pages listed in
// the navigation are routable, so reserved and backup files stay hidden.
func (a *App) handlePage(c echo.Context) error {
	name := c.Param("page")
	if !a.isDiscovered(name) {
		return echo.ErrNotFound
	}
	page, err := content.LoadPage(a.Config.PagesDir, name)
	if err != nil {
		if errors.Is(err, content.ErrPageNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return Render(c, a.Views.Page(views.PageData{
		Layout: a.layout(c, views.PageMeta{Title: page.Title}),
		Page:   page,
	}))
}

func (a *App) isDiscovered(name string) bool {
	for _, it := range a.Nav.Dynamic() {
		if it.URL == "/"+name {
			return true
		}
	}
	return false
}

// handleNavigation rescans the pages directory on every call, so clients
// always see the current set of pages.
func (a *App) handleNavigation(c echo.Context) error {
	a.Nav.Refresh()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"navItems": a.Nav.Items(),
	})
}

func (a *App) handleSitemap(c echo.Context) error {
	ps, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, ps)
}

func (a *App) handleFeed(c echo.Context) error {
	ps, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, ps)
}

// handleStaticFile serves name from the user's static dir, falling back to
// the embedded default.
func (a *App) handleStaticFile(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := filepath.Join(a.Config.StaticDir, name)
		if _, err := os.Stat(path); err == nil {
			return c.File(path)
		}
		data, err := fs.ReadFile(embeddedFS(), name)
		if err != nil {
			return echo.ErrNotFound
		}
		return c.Blob(http.StatusOK, mimeByName(name), data)
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.layout(c, views.PageMeta{Title: "Not Found"})))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.layout(c, views.PageMeta{Title: "Error"})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
