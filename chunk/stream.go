package chunk

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/voxio/errs"
)

// ReadFull fills buf from r.
//
// A stream that ends before buf is full reports errs.ErrTruncatedStream;
// any other read error passes through unchanged.
func ReadFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes, read %d", errs.ErrTruncatedStream, len(buf), n)
	}

	return err
}

// Discard consumes exactly n bytes from r without retaining them.
// Non-positive n is a no-op.
//
// A stream that ends before n bytes reports errs.ErrTruncatedStream;
// any other read error passes through unchanged.
func Discard(r io.Reader, n int) error {
	if n <= 0 {
		return nil
	}

	skipped, err := io.CopyN(io.Discard, r, int64(n))
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: skipping %d bytes, skipped %d", errs.ErrTruncatedStream, n, skipped)
	}

	return err
}
