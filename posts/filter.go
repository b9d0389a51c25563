// Package posts narrows a list of blog post summaries by search text and
// topic. Nothing here does I/O; the filtered view is recomputed on every
// call.
package posts

import (
	"errors"
	"fmt"
	"strings"
)

// TopicAll disables category filtering.
const TopicAll = "All"

// ErrUnknownTopic is returned when a topic outside the configured set is
// selected.
var ErrUnknownTopic = errors.New("unknown topic")

// Summary is the subset of post metadata shown in lists.
type Summary struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Excerpt       string `json:"excerpt"`
	Datetime      string `json:"datetime"`
	Featured      bool   `json:"featured"`
	CoverImage    string `json:"coverImage,omitempty"`
	CoverImageAlt string `json:"coverImageAlt,omitempty"`
}

// FilterState is the current search criteria.
type FilterState struct {
	SearchText    string
	SelectedTopic string
}

// Unfiltered reports whether the state selects every post.
func (f FilterState) Unfiltered() bool {
	return f.SearchText == "" && f.topic() == TopicAll
}

// Heading is the title shown above the filtered list.
func (f FilterState) Heading() string {
	if f.Unfiltered() {
		return "All Posts"
	}
	var parts []string
	if f.SearchText != "" {
		parts = append(parts, "Search result(s)")
	}
	if f.topic() != TopicAll {
		parts = append(parts, fmt.Sprintf("Posts in '%s' topic", f.SelectedTopic))
	}
	return strings.Join(parts, " · ")
}

// An empty topic behaves like TopicAll.
func (f FilterState) topic() string {
	if f.SelectedTopic == "" {
		return TopicAll
	}
	return f.SelectedTopic
}

// Match reports whether p passes both predicates of f.
func (f FilterState) Match(p Summary) bool {
	if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.SearchText)) {
		return false
	}
	topic := f.topic()
	return topic == TopicAll || p.Category == topic
}

// Filter returns the posts matching f, in their original order. No match
// yields an empty slice.
func Filter(all []Summary, f FilterState) []Summary {
	out := make([]Summary, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the featured posts when f is unfiltered, and nil
// otherwise.
func Featured(all []Summary, f FilterState) []Summary {
	if !f.Unfiltered() {
		return nil
	}
	var out []Summary
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
