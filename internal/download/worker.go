package download

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/brisk-dl/brisk/internal/throughput"
	"github.com/brisk-dl/brisk/internal/utils"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// fetchRange streams one byte range and records every read into the tracker.
// The bytes themselves are discarded. Workers run to completion or failure;
// there is no retry and no cancellation.
func fetchRange(client *utils.BriskHTTPClient, url string, br ByteRange, tracker *throughput.Tracker, limiter *rate.Limiter, log zerolog.Logger) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Range", br.Header())
	req.Header.Set("Connection", "keep-alive")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusPartialContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	buffer := make([]byte, utils.DefaultBufferSize)
	received := int64(0)
	for {
		bytesRead, err := resp.Body.Read(buffer)
		if bytesRead > 0 {
			tracker.Record(int64(bytesRead))
			received += int64(bytesRead)
			if limiter != nil {
				limiter.WaitN(context.Background(), bytesRead)
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
	}
	log.Debug().Str("range", br.Header()).Int64("received", received).Msg("Range complete")
	return nil
}
