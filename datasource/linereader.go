package datasource

import (
	"bufio"
	"errors"
	"io"
)

// wholeLineReader yields data only in complete newline-terminated
// lines. When reading a file that is still being appended to, the
// trailing partial line stays buffered until its newline arrives, so
// a CSV parser layered on top never sees half a record.
type wholeLineReader struct {
	src *bufio.Reader
	buf []byte
}

var _ io.Reader = (*wholeLineReader)(nil)

func newWholeLineReader(r io.Reader) *wholeLineReader {
	return &wholeLineReader{src: bufio.NewReader(r)}
}

func (w *wholeLineReader) Read(p []byte) (int, error) {
	line, err := w.src.ReadBytes('\n')
	w.buf = append(w.buf, line...)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// No newline yet; the fragment stays buffered in case the
			// source grows.
			return 0, io.EOF
		}
		return 0, err
	}
	n := copy(p, w.buf)
	w.buf = w.buf[:copy(w.buf, w.buf[n:])]
	return n, nil
}
