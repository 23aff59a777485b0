// Package browser opens asset URLs outside the terminal.
package browser

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/go-rod/rod/lib/launcher"
)

// System opens URLs in a local browser found by rod's launcher.
type System struct {
	open func(string)
}

// NewSystem returns a System backed by rod's launcher.
func NewSystem() *System {
	return &System{open: launcher.Open}
}

// Open validates u and hands it to the browser. Only http(s) and
// file URLs are accepted.
func (s *System) Open(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "file":
	default:
		return fmt.Errorf("refusing to open %q: unsupported scheme %q", u, parsed.Scheme)
	}
	s.open(u)
	return nil
}

// Recorder collects opened URLs instead of launching anything. It is used by
// --print and by tests.
type Recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *Recorder) Open(u string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, u)
	return nil
}

// URLs returns the recorded URLs in order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.urls))
	copy(out, r.urls)
	return out
}
