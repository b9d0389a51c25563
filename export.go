package folio

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const exportWorkers = 4

// ExportStats counts what Export wrote.
type ExportStats struct {
	Pages  int
	Files  int
	Covers int
}

// fileRoutes are non-HTML routes exported under their own name.
var fileRoutes = map[string]string{
	"/feed.xml":         "feed.xml",
	"/sitemap.xml":      "sitemap.xml",
	"/robots.txt":       "robots.txt",
	"/favicon.svg":      "favicon.svg",
	"/api/navigation":   "api/navigation",
	"/public/folio.css": "public/folio.css",
	"/public/folio.js":  "public/folio.js",
}

// Export renders every route of the site through the app's own handler and
// writes the result to outDir as static files, one index.html per page.
// The user's static dir is copied to <outDir>/public and post covers get
// resized thumbnails under <outDir>/public/covers.
func (a *App) Export(ctx context.Context, outDir string) (ExportStats, error) {
	if a.Config.SessionSecret == "" {
		// Nothing exported depends on the session, so any secret will do.
		a.Config.SessionSecret = uuid.NewString()
	}
	if err := a.Init(); err != nil {
		return ExportStats{}, err
	}
	ps, err := a.Cache.Posts()
	if err != nil {
		return ExportStats{}, fmt.Errorf("export: load posts: %w", err)
	}

	if err := copyDir(a.Config.StaticDir, filepath.Join(outDir, "public")); err != nil {
		return ExportStats{}, fmt.Errorf("export: copy static files: %w", err)
	}

	var pages, files, covers atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportWorkers)

	for _, route := range a.pageRoutes(ps) {
		g.Go(func() error {
			dst := filepath.Join(outDir, filepath.FromSlash(strings.Trim(route, "/")), "index.html")
			if err := a.exportRoute(ctx, route, dst, http.StatusOK); err != nil {
				return err
			}
			pages.Add(1)
			return nil
		})
	}
	for route, name := range fileRoutes {
		g.Go(func() error {
			if err := a.exportRoute(ctx, route, filepath.Join(outDir, filepath.FromSlash(name)), http.StatusOK); err != nil {
				return err
			}
			files.Add(1)
			return nil
		})
	}
	g.Go(func() error {
		return a.exportRoute(ctx, "/404/", filepath.Join(outDir, "404.html"), http.StatusNotFound)
	})
	for _, p := range ps {
		g.Go(func() error {
			if _, ok := a.coverSource(p); !ok {
				return nil
			}
			if err := a.writeCover(outDir, p); err != nil {
				return err
			}
			covers.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ExportStats{}, err
	}
	stats := ExportStats{Pages: int(pages.Load()), Files: int(files.Load()), Covers: int(covers.Load())}
	a.Echo.Logger.Infof("export: %d pages, %d files, %d covers written to %s", stats.Pages, stats.Files, stats.Covers, outDir)
	return stats, nil
}

// exportRoute serves route in-process and writes the body to dst.
func (a *App) exportRoute(ctx context.Context, route, dst string, wantStatus int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	req.Header.Set(exportHeader, "1")
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		return fmt.Errorf("export %s: status %d, want %d", route, rec.Code, wantStatus)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("export %s: %w", route, err)
	}
	if err := os.WriteFile(dst, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", route, err)
	}
	return nil
}

// copyDir copies the tree at src into dst. A missing src is not an error.
func copyDir(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
