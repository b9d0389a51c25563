package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStartsUnfiltered(t *testing.T) {
	s := NewState([]string{TopicAll, "AI"})
	assert.Equal(t, FilterState{SelectedTopic: TopicAll}, s.Current())
	assert.Equal(t, sample, s.Visible(sample))
}

func TestStateSettersApplyImmediately(t *testing.T) {
	s := NewState([]string{TopicAll, "AI", "Data Science"})

	s.SetSearchText("sql")
	assert.Equal(t, []string{"sql-tips", "advanced-sql"}, slugs(s.Visible(sample)))

	require.NoError(t, s.SetSelectedTopic("AI"))
	assert.Equal(t, []string{"advanced-sql"}, slugs(s.Visible(sample)))
	assert.Nil(t, s.FeaturedVisible(sample))

	s.SetSearchText("")
	require.NoError(t, s.SetSelectedTopic(TopicAll))
	assert.Len(t, s.FeaturedVisible(sample), 2)
}

func TestStateRejectsUnknownTopic(t *testing.T) {
	s := NewState([]string{"AI"})
	require.NoError(t, s.SetSelectedTopic("AI"))

	err := s.SetSelectedTopic("Cooking")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Equal(t, "AI", s.Current().SelectedTopic)

	assert.NoError(t, s.SetSelectedTopic(TopicAll))
}
