// Package folio is a portfolio and blog site engine built with Go, Echo, and
// templ. It renders a home page, about/portfolio/projects sections, a
// searchable blog and extra pages discovered on disk from one site record,
// and can export the whole site as static files.
//
// Templates are provided through the ViewFuncs struct; folio ships defaults
// and handles the handler logic, middleware, navigation and feeds.
package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/nav"
	"github.com/eringen/folio/site"
	"github.com/eringen/folio/views"
)

// ViewFuncs holds the templ components rendered for each page. This is the
// inversion-of-control mechanism that lets users own any template.
type ViewFuncs struct {
	Home        func(d views.HomeData) templ.Component
	About       func(d views.Layout) templ.Component
	Portfolio   func(d views.Layout) templ.Component
	Projects    func(d views.Layout) templ.Component
	Blog        func(d views.BlogData) templ.Component
	BlogPosts   func(d views.BlogData) templ.Component
	Post        func(d views.PostData) templ.Component
	Page        func(d views.PageData) templ.Component
	NotFound    func(d views.Layout) templ.Component
	ServerError func(d views.Layout) templ.Component
}

// DefaultViews returns the views backed by the embedded templates.
func DefaultViews() ViewFuncs {
	r := views.MustNew()
	return ViewFuncs{
		Home:        r.Home,
		About:       r.About,
		Portfolio:   r.Portfolio,
		Projects:    r.Projects,
		Blog:        r.Blog,
		BlogPosts:   r.BlogPosts,
		Post:        r.Post,
		Page:        r.Page,
		NotFound:    r.NotFound,
		ServerError: r.ServerError,
	}
}

func mergeViews(v, def ViewFuncs) ViewFuncs {
	if v.Home == nil {
		v.Home = def.Home
	}
	if v.About == nil {
		v.About = def.About
	}
	if v.Portfolio == nil {
		v.Portfolio = def.Portfolio
	}
	if v.Projects == nil {
		v.Projects = def.Projects
	}
	if v.Blog == nil {
		v.Blog = def.Blog
	}
	if v.BlogPosts == nil {
		v.BlogPosts = def.BlogPosts
	}
	if v.Post == nil {
		v.Post = def.Post
	}
	if v.Page == nil {
		v.Page = def.Page
	}
	if v.NotFound == nil {
		v.NotFound = def.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = def.ServerError
	}
	return v
}

// App is the central folio application. It wires together the site record,
// navigation, post cache, handlers, middleware, and templates.
type App struct {
	Config Config
	Echo   *echo.Echo
	Site   *site.Site
	Nav    *nav.Resolver
	Cache  *PostCache
	Views  ViewFuncs

	contactLimiter *RateLimiter
	customRoutes   []func(*App)

	initOnce sync.Once
	initErr  error
}

// New creates a folio App. Nothing is read from disk until Init.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	a.Echo.Logger.SetLevel(ParseLogLevel(a.Config.LogLevel))

	return a
}

// Init loads the site record, scans navigation and sets up middleware and
// routes. It runs once; later calls return the first result.
func (a *App) Init() error {
	a.initOnce.Do(func() {
		a.initErr = a.init()
	})
	return a.initErr
}

func (a *App) init() error {
	if a.Config.SessionSecret == "" {
		return errors.New("folio: SessionSecret is required")
	}

	s, err := site.Load(a.Config.SiteFile)
	if err != nil {
		return fmt.Errorf("folio: load site: %w", err)
	}
	a.Site = s

	a.Nav = nav.NewResolver(a.Config.PagesDir, a.Echo.Logger)

	a.Cache = NewPostCache(a.Config.PostsDir, a.Config.PostCacheTTL)
	a.contactLimiter = NewRateLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server is closed.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("folio listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run is Start bound to ctx: the server shuts down gracefully when ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Start()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	return <-errCh
}

// Reload drops cached posts and rescans navigation. The file watcher calls
// it on every content change.
func (a *App) Reload() {
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	if a.Nav != nil {
		a.Nav.Refresh()
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	return a.Echo.Close()
}

// BaseURL is the canonical site URL used in feeds, sitemaps and metadata.
func (a *App) BaseURL() string {
	if a.Config.URL != "" {
		return a.Config.URL
	}
	if a.Site != nil && a.Site.Metadata.SiteURL != "" {
		return a.Site.Metadata.SiteURL
	}
	return defaultURL
}
