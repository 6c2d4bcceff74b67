package download

import "fmt"

// ByteRange is a contiguous byte interval of the target resource, assigned to
// exactly one worker. End < 0 means the range is open-ended and runs to the
// end of the resource.
type ByteRange struct {
	Start int64
	End   int64
}

func (r ByteRange) Header() string {
	if r.End < 0 {
		return fmt.Sprintf("bytes=%d-", r.Start)
	}
	return fmt.Sprintf("bytes=%d-%d", r.Start, r.End)
}

// Partition splits [0, size-1] into one range per worker. Each worker gets
// size/workers bytes; the last range is open-ended and absorbs the remainder
// of the integer division. When workers exceeds size, the count is clamped so
// every range holds at least one byte.
func Partition(size int64, workers int) []ByteRange {
	if workers < 1 {
		workers = 1
	}
	if int64(workers) > size {
		workers = int(size)
	}
	chunkSize := size / int64(workers)
	ranges := make([]ByteRange, workers)
	for i := 0; i < workers; i++ {
		start := int64(i) * chunkSize
		end := start + chunkSize - 1
		if i == workers-1 {
			end = -1
		}
		ranges[i] = ByteRange{Start: start, End: end}
	}
	return ranges
}
