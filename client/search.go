package client

import (
	"strings"
	"sync"
	"time"
)

const defaultDebounceWindow = time.Second

// SearchDebouncer coalesces rapid query keystrokes into a single search.
// Every SetQuery restarts the window; only the value present when the
// window elapses is acted on. A settled empty query clears results
// instead of searching. Callbacks run on a timer goroutine, so results
// from overlapping searches carry no ordering guarantee.
type SearchDebouncer struct {
	mu       sync.Mutex
	window   time.Duration
	timer    *time.Timer
	onSearch func(query string)
	onClear  func()
	closed   bool
}

// NewSearchDebouncer wires the debouncer to its callbacks. A window of
// zero or less falls back to the one second default. onClear may be nil.
func NewSearchDebouncer(window time.Duration, onSearch func(query string), onClear func()) *SearchDebouncer {
	if window <= 0 {
		window = defaultDebounceWindow
	}
	return &SearchDebouncer{
		window:   window,
		onSearch: onSearch,
		onClear:  onClear,
	}
}

// SetQuery records the latest keystroke and restarts the debounce window.
func (d *SearchDebouncer) SetQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.settle(query)
	})
}

// Close cancels any pending search. Further SetQuery calls are ignored.
func (d *SearchDebouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *SearchDebouncer) settle(query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		if d.onClear != nil {
			d.onClear()
		}
		return
	}
	d.onSearch(query)
}
