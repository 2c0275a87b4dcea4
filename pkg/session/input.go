package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

type lineResult struct {
	text string
	err  error
}

// lineReader turns a blocking reader into lines that can be awaited with a context.
// The pump goroutine stays blocked in Scan if the underlying reader never returns.
type lineReader struct {
	lines chan lineResult
	done  chan struct{}
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
	go lr.pump(r)
	return lr
}

func (lr *lineReader) pump(r io.Reader) {
	defer close(lr.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !lr.send(lineResult{text: scanner.Text()}) {
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	} else {
		err = fmt.Errorf("read input: %w", err)
	}
	lr.send(lineResult{err: err})
}

func (lr *lineReader) send(res lineResult) bool {
	select {
	case lr.lines <- res:
		return true
	case <-lr.done:
		return false
	}
}

// readLine waits for the next line with its terminator removed.
func (lr *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (lr *lineReader) close() {
	close(lr.done)
}
