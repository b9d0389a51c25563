package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPosts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ml-basics.md"), `---
title: ML Basics
excerpt: Where to start.
datetime: "2024-03-01"
featured: true
category: AI
coverImage: /public/ml.png
tags: [ml, intro]
---
# Hello
`)
	writeFile(t, filepath.Join(dir, "sql-tips.mdx"), `---
title: SQL Tips
datetime: "2024-05-10"
category: Data Science
---
Body`)
	writeFile(t, filepath.Join(dir, "no-matter.md"), "just text\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	got, err := LoadPosts(dir)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []string{"sql-tips", "ml-basics", "no-matter"}
	for i, slug := range wantOrder {
		if got[i].Slug != slug {
			t.Errorf("got[%d].Slug = %q, want %q", i, got[i].Slug, slug)
		}
	}

	ml := got[1]
	if ml.Title != "ML Basics" || ml.Category != "AI" || !ml.Featured {
		t.Errorf("unexpected ml post: %+v", ml.Summary)
	}
	if ml.CoverImage != "/public/ml.png" {
		t.Errorf("CoverImage = %q", ml.CoverImage)
	}
	if len(ml.Tags) != 2 || ml.Tags[0] != "ml" {
		t.Errorf("Tags = %v, want [ml intro]", ml.Tags)
	}
	if strings.TrimSpace(ml.Body) != "# Hello" {
		t.Errorf("Body = %q, want %q", ml.Body, "# Hello")
	}
	if ml.Link() != "/blog/posts/ml-basics/" {
		t.Errorf("Link = %q", ml.Link())
	}

	plain := got[2]
	if plain.Title != "No Matter" {
		t.Errorf("derived title = %q, want %q", plain.Title, "No Matter")
	}
	if !plain.Date.IsZero() {
		t.Errorf("undated post has date %v", plain.Date)
	}
}

func TestLoadPostsMissingDir(t *testing.T) {
	got, err := LoadPosts(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no posts, got %d", len(got))
	}
}

func TestLoadPostsMalformedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.md"), "---\ntitle: [oops\n---\nbody")
	if _, err := LoadPosts(dir); err == nil {
		t.Fatal("expected error for malformed frontmatter")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-01-15", true},
		{"2024-01-15T10:00:00Z", true},
		{"2024-01-15 10:00:00", true},
		{"January 15", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDate(tt.input); ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
	}
}

func TestSummariesKeepsOrder(t *testing.T) {
	ps := []Post{{}, {}}
	ps[0].Slug, ps[1].Slug = "b", "a"
	s := Summaries(ps)
	if s[0].Slug != "b" || s[1].Slug != "a" {
		t.Errorf("Summaries = %+v", s)
	}
}
