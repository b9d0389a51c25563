package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, input); err != nil {
		t.Fatalf("RenderMarkdown(%q) failed: %v", input, err)
	}
	return buf.String()
}

func TestRenderMarkdownInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text `code` more", "<code>code</code>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownHeadingsHaveIDs(t *testing.T) {
	got := render(t, "# Getting Started\n\n## Next Steps")
	if !strings.Contains(got, `<h1 id="getting-started">Getting Started</h1>`) {
		t.Errorf("missing h1 with id: %q", got)
	}
	if !strings.Contains(got, `<h2 id="next-steps">`) {
		t.Errorf("missing h2 with id: %q", got)
	}
}

func TestRenderMarkdownCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```go\nfmt.Println(1 < 2)\n```")
	if !strings.Contains(got, `<code class="language-go">`) {
		t.Errorf("missing language class: %q", got)
	}
	if !strings.Contains(got, "1 &lt; 2") {
		t.Errorf("code not escaped: %q", got)
	}
}

func TestRenderMarkdownExternalLinkNewTab(t *testing.T) {
	got := render(t, "[site](https://example.com/a_b_c) and [home](/about/)")
	if !strings.Contains(got, `<a href="https://example.com/a_b_c" target="_blank" rel="noopener noreferrer">site</a>`) {
		t.Errorf("external link not opened in new tab: %q", got)
	}
	if !strings.Contains(got, `<a href="/about/">home</a>`) {
		t.Errorf("internal link changed: %q", got)
	}
}

func TestRenderMarkdownDropsUnsafeLinks(t *testing.T) {
	got := render(t, "[x](javascript:alert(1))")
	if strings.Contains(got, "javascript:") {
		t.Errorf("unsafe scheme kept: %q", got)
	}
}

func TestRenderMarkdownImagesLazyAfterFirst(t *testing.T) {
	got := render(t, "![a](/one.png)\n\n![b](/two.png)")
	if strings.Count(got, `loading="eager"`) != 1 || strings.Count(got, `loading="lazy"`) != 1 {
		t.Errorf("unexpected loading attrs: %q", got)
	}
}

func TestRenderMarkdownOmitsRawHTML(t *testing.T) {
	got := render(t, "<script>alert(1)</script>\n\ntext")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw html rendered: %q", got)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("table not rendered: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("hello *world*").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<em>world</em>") {
		t.Errorf("component output = %q", buf.String())
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"/local/path", "/local/path"},
		{"#anchor", "#anchor"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"javascript:alert(1)", ""},
		{"relative/path", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
