package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/brisk-dl/brisk/internal/throughput"
)

// ReporterOptions configures the speed reporter.
type ReporterOptions struct {
	// Output is where status lines are written. Default: os.Stdout.
	Output io.Writer

	// Interval is the tick period. Default: 1s.
	Interval time.Duration
}

// SpeedReporter emits one status line per tick with the smoothed transfer
// rate. It only reads from the tracker; its ticker is independent of the
// tracker's own window cadence.
type SpeedReporter struct {
	tracker *throughput.Tracker
	opts    ReporterOptions

	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewSpeedReporter(tracker *throughput.Tracker, opts ReporterOptions) *SpeedReporter {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Interval == 0 {
		opts.Interval = time.Second
	}
	return &SpeedReporter{
		tracker: tracker,
		opts:    opts,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (r *SpeedReporter) Start() {
	go r.tickLoop()
}

// Stop signals the loop and waits for it to exit, so an in-progress tick
// always finishes its write. Safe to call more than once.
func (r *SpeedReporter) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		<-r.doneCh
		return
	}
	r.stopped = true
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh
}

func (r *SpeedReporter) tickLoop() {
	defer close(r.doneCh)
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.printTick()
		}
	}
}

func (r *SpeedReporter) printTick() {
	snap := r.tracker.Snapshot()
	avg := snap.Average()
	line := fmt.Sprintf("[%s] Average speed: %d B/s, %d KB/s, %d MB/s",
		time.Now().Format(time.DateTime), avg, avg/1024, avg/(1024*1024))
	if r.opts.Output == os.Stdout {
		line = clampLine(line, getTerminalWidth())
	}
	fmt.Fprintln(r.opts.Output, infoStyle.Render(line))
}
