package runtime

import (
	"io"
	"sync"
)

// Wraps an [io.Reader] so callers can learn when the stream is exhausted.
//
// Exec streams stdin into a container process and must close the process's
// stdin once the host side runs dry; done is closed on the first [io.EOF]
// and never again, so waiting on it from another goroutine is safe.
type doneReader struct {
	r    io.Reader
	once sync.Once
	done chan struct{}
}

// Wraps the given reader.
func newDoneReader(r io.Reader) *doneReader {
	return &doneReader{r: r, done: make(chan struct{})}
}

// Reads from the underlying reader, closing done on the first [io.EOF].
//
// Errors other than EOF pass through without touching the channel.
func (d *doneReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err == io.EOF {
		d.once.Do(func() { close(d.done) })
	}
	return n, err
}
