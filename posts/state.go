package posts

import "slices"

// State owns a FilterState and is the only place it changes. Readers get
// values from Current or derived views from Visible. A State is not safe
// for concurrent writes; the server builds one per request.
type State struct {
	current FilterState
	topics  []string
}

// NewState returns a State starting at the unfiltered view. topics is the
// enumerated set SetSelectedTopic accepts; TopicAll is always allowed.
func NewState(topics []string) *State {
	return &State{
		current: FilterState{SelectedTopic: TopicAll},
		topics:  topics,
	}
}

// Current returns the criteria as they are now.
func (s *State) Current() FilterState {
	return s.current
}

// Topics returns the selectable topics.
func (s *State) Topics() []string {
	return s.topics
}

// SetSearchText replaces the search text.
func (s *State) SetSearchText(text string) {
	s.current.SearchText = text
}

// SetSelectedTopic selects topic, or returns ErrUnknownTopic and leaves the
// state unchanged.
func (s *State) SetSelectedTopic(topic string) error {
	if topic != TopicAll && !slices.Contains(s.topics, topic) {
		return ErrUnknownTopic
	}
	s.current.SelectedTopic = topic
	return nil
}

// Visible filters all with the current criteria.
func (s *State) Visible(all []Summary) []Summary {
	return Filter(all, s.current)
}

// FeaturedVisible returns the featured view for the current criteria.
func (s *State) FeaturedVisible(all []Summary) []Summary {
	return Featured(all, s.current)
}
