package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Summary{
	{Slug: "ml-basics", Title: "ML Basics", Category: "AI", Featured: true},
	{Slug: "sql-tips", Title: "SQL Tips", Category: "Data Science"},
	{Slug: "advanced-sql", Title: "Advanced SQL for ML", Category: "AI", Featured: true},
	{Slug: "stats", Title: "Statistics Refresher", Category: "Statistics"},
}

func slugs(ps []Summary) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Slug)
	}
	return out
}

func TestFilterExamples(t *testing.T) {
	two := sample[:2]

	got := Filter(two, FilterState{SearchText: "sql", SelectedTopic: TopicAll})
	assert.Equal(t, []string{"sql-tips"}, slugs(got))

	got = Filter(two, FilterState{SearchText: "", SelectedTopic: "AI"})
	assert.Equal(t, []string{"ml-basics"}, slugs(got))
}

func TestFilterUnfilteredIsIdentity(t *testing.T) {
	assert.Equal(t, sample, Filter(sample, FilterState{SelectedTopic: TopicAll}))
	assert.Equal(t, sample, Filter(sample, FilterState{}))
}

func TestFilterCombinesPredicates(t *testing.T) {
	tests := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{"search across topics", FilterState{SearchText: "SQL", SelectedTopic: TopicAll}, []string{"sql-tips", "advanced-sql"}},
		{"search within topic", FilterState{SearchText: "sql", SelectedTopic: "AI"}, []string{"advanced-sql"}},
		{"topic is case sensitive", FilterState{SelectedTopic: "ai"}, []string{}},
		{"no match", FilterState{SearchText: "kubernetes", SelectedTopic: TopicAll}, []string{}},
		{"substring in middle", FilterState{SearchText: "refresh", SelectedTopic: TopicAll}, []string{"stats"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sample, tt.state)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, slugs(got))
		})
	}
}

func TestFilterIsOrderPreservingSubsequence(t *testing.T) {
	states := []FilterState{
		{SearchText: "s", SelectedTopic: TopicAll},
		{SearchText: "", SelectedTopic: "AI"},
		{SearchText: "ml", SelectedTopic: "AI"},
	}
	for _, st := range states {
		got := Filter(sample, st)
		i := 0
		for _, p := range got {
			for i < len(sample) && sample[i].Slug != p.Slug {
				i++
			}
			if i == len(sample) {
				t.Fatalf("Filter(%+v) = %v is not a subsequence", st, slugs(got))
			}
			i++
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, FilterState{SearchText: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFeaturedOnlyWhenUnfiltered(t *testing.T) {
	assert.Equal(t, []string{"ml-basics", "advanced-sql"}, slugs(Featured(sample, FilterState{SelectedTopic: TopicAll})))
	assert.Nil(t, Featured(sample, FilterState{SearchText: "ml", SelectedTopic: TopicAll}))
	assert.Nil(t, Featured(sample, FilterState{SelectedTopic: "AI"}))
}

func TestHeading(t *testing.T) {
	tests := []struct {
		state FilterState
		want  string
	}{
		{FilterState{SelectedTopic: TopicAll}, "All Posts"},
		{FilterState{SearchText: "go", SelectedTopic: TopicAll}, "Search result(s)"},
		{FilterState{SelectedTopic: "AI"}, "Posts in 'AI' topic"},
		{FilterState{SearchText: "go", SelectedTopic: "AI"}, "Search result(s) · Posts in 'AI' topic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Heading())
	}
}
