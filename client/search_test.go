package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRecorder struct {
	mu       sync.Mutex
	searches []string
	clears   int
}

func (r *searchRecorder) onSearch(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches = append(r.searches, query)
}

func (r *searchRecorder) onClear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *searchRecorder) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.searches...), r.clears
}

func TestDebouncer_RapidKeystrokesFireOnce(t *testing.T) {
	rec := &searchRecorder{}
	d := NewSearchDebouncer(80*time.Millisecond, rec.onSearch, rec.onClear)
	defer d.Close()

	// Keystrokes inside the window keep pushing the deadline out.
	d.SetQuery("a")
	time.Sleep(20 * time.Millisecond)
	d.SetQuery("an")
	time.Sleep(20 * time.Millisecond)
	d.SetQuery("ana")

	require.Eventually(t, func() bool {
		searches, _ := rec.snapshot()
		return len(searches) == 1
	}, time.Second, 10*time.Millisecond)

	searches, clears := rec.snapshot()
	assert.Equal(t, []string{"ana"}, searches)
	assert.Zero(t, clears)

	// No second fire after the window has long passed.
	time.Sleep(200 * time.Millisecond)
	searches, _ = rec.snapshot()
	assert.Len(t, searches, 1)
}

func TestDebouncer_SettledEmptyQueryClearsWithoutSearching(t *testing.T) {
	rec := &searchRecorder{}
	d := NewSearchDebouncer(40*time.Millisecond, rec.onSearch, rec.onClear)
	defer d.Close()

	d.SetQuery("ana")
	time.Sleep(10 * time.Millisecond)
	d.SetQuery("")

	require.Eventually(t, func() bool {
		_, clears := rec.snapshot()
		return clears == 1
	}, time.Second, 10*time.Millisecond)

	searches, _ := rec.snapshot()
	assert.Empty(t, searches)
}

func TestDebouncer_CloseCancelsPendingSearch(t *testing.T) {
	rec := &searchRecorder{}
	d := NewSearchDebouncer(40*time.Millisecond, rec.onSearch, rec.onClear)

	d.SetQuery("ana")
	d.Close()

	time.Sleep(120 * time.Millisecond)
	searches, clears := rec.snapshot()
	assert.Empty(t, searches)
	assert.Zero(t, clears)

	// SetQuery after Close is a no-op.
	d.SetQuery("bob")
	time.Sleep(120 * time.Millisecond)
	searches, _ = rec.snapshot()
	assert.Empty(t, searches)
}

func TestDebouncer_DefaultWindowIsOneSecond(t *testing.T) {
	d := NewSearchDebouncer(0, func(string) {}, nil)
	defer d.Close()

	assert.Equal(t, time.Second, d.window)
}
