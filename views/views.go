// Package views holds the default page templates. Each page is an
// html/template set sharing one layout, exposed as a templ.Component so it
// can be swapped for a user's own templ component.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"home", "about", "portfolio", "projects",
	"blog", "post", "page", "notfound", "error",
}

// Renderer executes the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout and partials once and clones them for every page.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).
		ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNew is like New but panics on a template error. The templates are
// embedded, so an error here is a build defect.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) component(page, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return r.pages[page].ExecuteTemplate(w, name, data)
	})
}

// Home renders the landing page.
func (r *Renderer) Home(d HomeData) templ.Component {
	return r.component("home", "layout", d)
}

// About renders the about section.
func (r *Renderer) About(d Layout) templ.Component {
	return r.component("about", "layout", d)
}

// Portfolio renders the portfolio highlights.
func (r *Renderer) Portfolio(d Layout) templ.Component {
	return r.component("portfolio", "layout", d)
}

// Projects renders the project list.
func (r *Renderer) Projects(d Layout) templ.Component {
	return r.component("projects", "layout", d)
}

// Blog renders the full blog index.
func (r *Renderer) Blog(d BlogData) templ.Component {
	return r.component("blog", "layout", d)
}

// BlogPosts renders only the filtered list, for HX requests.
func (r *Renderer) BlogPosts(d BlogData) templ.Component {
	return r.component("blog", "posts", d)
}

// Post renders a single blog post with its related posts.
func (r *Renderer) Post(d PostData) templ.Component {
	return r.component("post", "layout", d)
}

// Page renders a page from the pages directory.
func (r *Renderer) Page(d PageData) templ.Component {
	return r.component("page", "layout", d)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(d Layout) templ.Component {
	return r.component("notfound", "layout", d)
}

// ServerError renders the 5xx page.
func (r *Renderer) ServerError(d Layout) templ.Component {
	return r.component("error", "layout", d)
}
