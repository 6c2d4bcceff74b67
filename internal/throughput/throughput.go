// Package throughput tracks received byte counts in one-second windows and
// derives a smoothed transfer rate from the most recent closed windows.
package throughput

import (
	"sync"
	"time"
)

const (
	// WindowSpan is the nominal accumulation period of a single window.
	WindowSpan = time.Second
	// WindowCap bounds the rolling history of closed windows.
	WindowCap = 10
)

// Tracker is the single owner of the shared throughput counters. All workers
// record into one Tracker; the reporter and the final summary read from it.
// Every method holds the mutex for the whole call, so partial state is never
// observable.
//
// Window flushing is opportunistic: a window only closes when a Record call
// observes elapsed time >= WindowSpan. Under sparse arrival a window may span
// more than a second; there is no timer inside the Tracker.
type Tracker struct {
	mu          sync.Mutex
	windowBytes int64
	windows     []int64
	windowStart time.Time
	totalBytes  int64
}

// NewTracker returns a Tracker with an empty history and the current window
// starting now. The caller creates it before any worker starts; workers never
// reset the window start.
func NewTracker() *Tracker {
	return &Tracker{
		windows:     make([]int64, 0, WindowCap),
		windowStart: time.Now(),
	}
}

// Record adds a chunk length to the counters. If the open window has run for
// WindowSpan or longer, its sum is pushed onto the history first (evicting
// the oldest entry beyond WindowCap) and n starts the next window.
func (t *Tracker) Record(n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if now.Sub(t.windowStart) >= WindowSpan {
		t.windows = append(t.windows, t.windowBytes)
		if len(t.windows) > WindowCap {
			t.windows = t.windows[1:]
		}
		t.windowBytes = 0
		t.windowStart = now
	}
	t.windowBytes += n
	t.totalBytes += n
}

// Snapshot is a consistent copy of the closed-window history and the running
// total. The open window is not included until it flushes.
type Snapshot struct {
	Windows    []int64
	TotalBytes int64
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	windows := make([]int64, len(t.windows))
	copy(windows, t.windows)
	return Snapshot{
		Windows:    windows,
		TotalBytes: t.totalBytes,
	}
}

// Average returns the mean bytes per second over the closed windows, using
// integer division. An empty history yields 0.
func (s Snapshot) Average() int64 {
	if len(s.Windows) == 0 {
		return 0
	}
	var sum int64
	for _, w := range s.Windows {
		sum += w
	}
	return sum / int64(len(s.Windows))
}
