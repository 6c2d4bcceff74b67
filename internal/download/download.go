package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/brisk-dl/brisk/internal/output"
	"github.com/brisk-dl/brisk/internal/throughput"
	"github.com/brisk-dl/brisk/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type Config struct {
	URL              string
	RateLimit        int64 // bytes per second, 0 means unlimited
	HTTPClientConfig utils.HTTPClientConfig

	// Workers overrides the connection count; 0 uses the number of logical
	// CPUs. The CLI never sets it, tests do.
	Workers int

	// ProgressOutput receives the per-second status lines. Default: os.Stdout.
	ProgressOutput io.Writer
}

type Summary struct {
	TotalBytes int64
	AverageBps int64
	Elapsed    time.Duration
}

// Run measures download throughput for a single URL: one metadata request for
// the content length, one range request per worker, a reporter ticking once a
// second. Any worker failure fails the whole run.
func Run(cfg Config) (*Summary, error) {
	transferID := uuid.New().String()[:8]
	log := utils.GetLogger("download").With().Str("transfer", transferID).Logger()

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	progressOut := cfg.ProgressOutput
	if progressOut == nil {
		progressOut = os.Stdout
	}

	cfg.HTTPClientConfig.HighThreadMode = workers > 5
	client := utils.NewBriskHTTPClient(cfg.HTTPClientConfig)

	size, err := fetchContentLength(cfg.URL, client)
	if err != nil {
		return nil, err
	}
	ranges := Partition(size, workers)
	log.Debug().Int64("size", size).Int("connections", len(ranges)).Msg("Resource partitioned")

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), utils.DefaultBufferSize)
	}

	// The tracker is created here, before any worker starts, and its window
	// start is never touched again outside Record.
	tracker := throughput.NewTracker()
	reporter := output.NewSpeedReporter(tracker, output.ReporterOptions{Output: progressOut})
	reporter.Start()

	startTime := time.Now()
	var wg sync.WaitGroup
	errCh := make(chan error, len(ranges))
	for i, br := range ranges {
		wg.Add(1)
		go func(id int, br ByteRange) {
			defer wg.Done()
			if err := fetchRange(client, cfg.URL, br, tracker, limiter, log); err != nil {
				errCh <- &TransferError{Worker: id, Range: br, Err: err}
			}
		}(i, br)
	}
	wg.Wait()
	reporter.Stop()

	close(errCh)
	for err := range errCh {
		return nil, err
	}

	snap := tracker.Snapshot()
	return &Summary{
		TotalBytes: snap.TotalBytes,
		AverageBps: snap.Average(),
		Elapsed:    time.Since(startTime),
	}, nil
}

// fetchContentLength issues the metadata GET and reads the Content-Length
// header. The body is closed without being consumed.
func fetchContentLength(url string, client *utils.BriskHTTPClient) (int64, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("server returned error: %d", resp.StatusCode)
	}
	contentLength := resp.Header.Get("Content-Length")
	if contentLength == "" {
		return 0, fmt.Errorf("%w: missing Content-Length header", ErrSizeUnavailable)
	}
	size, err := strconv.ParseInt(contentLength, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid Content-Length %q", ErrSizeUnavailable, contentLength)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: reported size %d", ErrSizeUnavailable, size)
	}
	return size, nil
}
