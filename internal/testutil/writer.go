// Package testutil provides testing utilities.
package testutil

import (
	"bytes"
	"errors"
)

// ErrWrite is returned by FailingWriter once its budget is spent.
var ErrWrite = errors.New("write failed")

// FailingWriter accepts After writes and fails every write after that.
// Accepted bytes are kept and available through String.
type FailingWriter struct {
	After int

	buf    bytes.Buffer
	writes int
}

// Write implements io.Writer.
func (w *FailingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.After {
		return 0, ErrWrite
	}
	w.writes++
	return w.buf.Write(p)
}

// String returns everything written before the first failure.
func (w *FailingWriter) String() string {
	return w.buf.String()
}
