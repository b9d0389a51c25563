package folio

import (
	"errors"
	"sync"
	"time"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/posts"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// PostCache is an in-memory cache of the posts directory with TTL.
type PostCache struct {
	mu        sync.RWMutex
	posts     []content.Post
	summaries []posts.Summary
	loaded    bool
	fetched   time.Time
	ttl       time.Duration
	dir       string
}

// NewPostCache creates a PostCache reading markdown posts from dir.
func NewPostCache(dir string, ttl time.Duration) *PostCache {
	return &PostCache{dir: dir, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.summaries = nil
	c.loaded = false
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	ps, err := content.LoadPosts(c.dir)
	if err != nil {
		return err
	}
	c.posts = ps
	c.summaries = content.Summaries(ps)
	c.loaded = true
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and summaries after ensuring the cache
// is fresh. It tries a read lock first; only takes a write lock if a reload
// is needed.
func (c *PostCache) ensureLoaded() ([]content.Post, []posts.Summary, error) {
	c.mu.RLock()
	if c.valid() {
		ps, sums := c.posts, c.summaries
		c.mu.RUnlock()
		return ps, sums, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.summaries, nil
}

// Posts returns every post, newest first. Callers must not modify the slice.
func (c *PostCache) Posts() ([]content.Post, error) {
	ps, _, err := c.ensureLoaded()
	return ps, err
}

// Summaries returns the list metadata of every post, newest first.
func (c *PostCache) Summaries() ([]posts.Summary, error) {
	_, sums, err := c.ensureLoaded()
	return sums, err
}

// GetPost returns a single post by slug from the cache.
func (c *PostCache) GetPost(slug string) (content.Post, error) {
	ps, _, err := c.ensureLoaded()
	if err != nil {
		return content.Post{}, err
	}
	for _, p := range ps {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.Post{}, ErrNotFound
}
