package download

import (
	"errors"
	"fmt"
)

// ErrSizeUnavailable means the metadata response carried no usable
// Content-Length. The transfer is never attempted in that case; there is no
// single-stream fallback.
var ErrSizeUnavailable = errors.New("server did not report a usable content length")

// TransferError wraps any failure inside a worker's request, response, or
// body stream. It is fatal to the whole transfer.
type TransferError struct {
	Worker int
	Range  ByteRange
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("worker %d (%s): %v", e.Worker, e.Range.Header(), e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
