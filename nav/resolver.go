package nav

import "sync"

// Logger is the subset of echo.Logger the navigation code writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Resolver keeps the merged navigation for a pages root. Items is safe for
// concurrent use; Refresh rescans the directory.
type Resolver struct {
	root   string
	logger Logger

	mu    sync.RWMutex
	items []Item
}

// NewResolver creates a Resolver for root and runs the first discovery.
// A nil logger discards output.
func NewResolver(root string, logger Logger) *Resolver {
	if logger == nil {
		logger = nopLogger{}
	}
	r := &Resolver{root: root, logger: logger}
	r.Refresh()
	return r
}

// Refresh rescans the pages root. On failure the static entries are kept
// and the error is logged, never returned.
func (r *Resolver) Refresh() {
	dynamic, err := Discover(r.root)
	if err != nil {
		r.logger.Warnf("navigation: %v; using static entries only", err)
	}
	items := append(StaticItems(), dynamic...)

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
	r.logger.Debugf("navigation: %d entries (%d discovered)", len(items), len(dynamic))
}

// Items returns a copy of the current navigation list.
func (r *Resolver) Items() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Dynamic returns only the discovered entries.
func (r *Resolver) Dynamic() []Item {
	var out []Item
	for _, it := range r.Items() {
		if it.IsDynamic {
			out = append(out, it)
		}
	}
	return out
}

// Root returns the scanned pages directory.
func (r *Resolver) Root() string {
	return r.root
}
