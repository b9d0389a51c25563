package folio

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestPostCacheReloadsAfterInvalidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "first.md"), "---\ntitle: First\n---\nbody")

	c := NewPostCache(dir, time.Hour)
	sums, err := c.Summaries()
	if err != nil {
		t.Fatalf("Summaries failed: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("expected 1 post, got %d", len(sums))
	}

	writeFile(t, filepath.Join(dir, "second.md"), "---\ntitle: Second\n---\nbody")
	if sums, _ = c.Summaries(); len(sums) != 1 {
		t.Fatalf("expected cached result, got %d posts", len(sums))
	}

	c.Invalidate()
	if sums, _ = c.Summaries(); len(sums) != 2 {
		t.Fatalf("expected 2 posts after invalidate, got %d", len(sums))
	}
}

func TestPostCacheExpires(t *testing.T) {
	dir := t.TempDir()
	c := NewPostCache(dir, 10*time.Millisecond)
	if ps, err := c.Posts(); err != nil || len(ps) != 0 {
		t.Fatalf("Posts() = %v, %v; want empty", ps, err)
	}
	writeFile(t, filepath.Join(dir, "late.md"), "late")
	time.Sleep(20 * time.Millisecond)
	if ps, _ := c.Posts(); len(ps) != 1 {
		t.Fatalf("expected reload after ttl, got %d posts", len(ps))
	}
}

func TestPostCacheGetPost(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.md"), "---\ntitle: Hello\n---\nbody")
	c := NewPostCache(dir, time.Hour)

	p, err := c.GetPost("hello")
	if err != nil || p.Title != "Hello" {
		t.Fatalf("GetPost = %+v, %v", p, err)
	}
	if _, err := c.GetPost("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
