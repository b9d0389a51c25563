package folio

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Config holds the settings of a folio site. The site's content (names,
// section copy, topics) lives in the site record at SiteFile instead.
type Config struct {
	Addr string `mapstructure:"addr"` // Listen address (default ":3000")
	URL  string `mapstructure:"url"`  // Canonical URL; falls back to siteMetadata.siteUrl, then "http://localhost:3000"

	PagesDir  string `mapstructure:"pages_dir"`  // Pages scanned for navigation (default "pages")
	PostsDir  string `mapstructure:"posts_dir"`  // Markdown posts (default "content/posts")
	SiteFile  string `mapstructure:"site_file"`  // Site record (default "site.yaml")
	StaticDir string `mapstructure:"static_dir"` // User-owned static assets (default "public")
	OutDir    string `mapstructure:"out_dir"`    // Static export target (default "out")

	SessionSecret string `mapstructure:"session_secret"` // Required to serve: cookie session secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL time.Duration `mapstructure:"post_cache_ttl"` // Post cache TTL (default 5min)
	LogLevel     string        `mapstructure:"log_level"`      // debug, info, warn, error or off (default "info")
}

const defaultURL = "http://localhost:3000"

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PagesDir == "" {
		c.PagesDir = "pages"
	}
	if c.PostsDir == "" {
		c.PostsDir = "content/posts"
	}
	if c.SiteFile == "" {
		c.SiteFile = "site.yaml"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutDir == "" {
		c.OutDir = "out"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ParseLogLevel maps a level name (debug, info, warn, error or off) onto
// gommon's levels. Unknown names map to INFO.
func ParseLogLevel(name string) log.Lvl {
	switch strings.ToLower(name) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithViews replaces the default views. Nil fields keep the default.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = mergeViews(v, a.Views)
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides Config.StaticDir.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces Echo's logger, which every component logs through.
func WithLogger(l echo.Logger) Option {
	return func(a *App) {
		a.Echo.Logger = l
	}
}
