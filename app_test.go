package folio

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

type testSite struct {
	root string
	app  *App
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 255, A: 255})
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// newTestSite lays out a small site in a temp dir and initializes an App
// serving it.
func newTestSite(t *testing.T) *testSite {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "pages", "uses", "index.md"), "---\ntitle: What I Use\n---\n- a good editor\n")
	writeFile(t, filepath.Join(root, "pages", "now.html"), "<p>Working on folio.</p>")
	writeFile(t, filepath.Join(root, "pages", "index.tsx"), "home")
	writeFile(t, filepath.Join(root, "pages", "draft.md.bak"), "old")
	writeFile(t, filepath.Join(root, "pages", "blog", "index.tsx"), "blog")

	writeFile(t, filepath.Join(root, "content", "posts", "ml-basics.md"), `---
title: ML Basics
excerpt: Where to start with machine learning.
datetime: "2024-03-01"
featured: true
category: Machine Learning
coverImage: /public/img/ml.png
coverImageAlt: A chart
tags: [ml]
---
## Getting started

Read the [docs](https://example.com/docs).
`)
	writeFile(t, filepath.Join(root, "content", "posts", "python-tips.md"), `---
title: Python Tips
excerpt: Small things that help.
datetime: "2024-05-10"
category: Python
---
Use a virtualenv.
`)
	writePNG(t, filepath.Join(root, "public", "img", "ml.png"), 1600, 800)

	app := New(Config{
		URL:           "https://folio.example",
		PagesDir:      filepath.Join(root, "pages"),
		PostsDir:      filepath.Join(root, "content", "posts"),
		SiteFile:      filepath.Join(root, "site.yaml"),
		StaticDir:     filepath.Join(root, "public"),
		SessionSecret: "test-secret",
		LogLevel:      "off",
	})
	require.NoError(t, app.Init())
	t.Cleanup(func() { _ = app.Close() })
	return &testSite{root: root, app: app}
}

func (s *testSite) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.app.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *testSite) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *testSite) doc(t *testing.T, target string) *goquery.Document {
	t.Helper()
	rec := s.get(t, target)
	require.Equal(t, http.StatusOK, rec.Code, "GET %s", target)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

// csrf fetches the home page and returns the CSRF cookie it sets.
func (s *testSite) csrf(t *testing.T) *http.Cookie {
	t.Helper()
	rec := s.get(t, "/")
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			return c
		}
	}
	t.Fatal("no _csrf cookie set")
	return nil
}

func (s *testSite) postForm(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return s.do(t, req)
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
