package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// LineReader yields one line of user input per call. Implementations return
// ErrEndOfInput once no more lines will arrive.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Reader reads lines from a stream such as os.Stdin. The blocking read runs
// on its own goroutine so a cancelled context can unblock ReadLine. Lines have
// no length limit.
type Reader struct {
	src   *bufio.Reader
	lines chan string
	done  chan struct{}
	once  sync.Once
	stop  sync.Once
	err   error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(r),
		lines: make(chan string),
		done:  make(chan struct{}),
	}
}

func (r *Reader) start() {
	go func() {
		defer close(r.lines)
		for {
			line, err := r.src.ReadString('\n')
			if line != "" || err == nil {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case r.lines <- line:
				case <-r.done:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					r.err = err
				}
				return
			}
		}
	}()
}

func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return "", ErrEndOfInput
	default:
	}
	r.once.Do(r.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", ErrEndOfInput
	case line, ok := <-r.lines:
		if ok {
			return line, nil
		}
		// r.err is written before the channel is closed
		if r.err != nil {
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return "", ErrEndOfInput
	}
}

// Close releases the reading goroutine once its pending read returns.
// Later ReadLine calls report ErrEndOfInput.
func (r *Reader) Close() error {
	r.stop.Do(func() { close(r.done) })
	return nil
}

// Script replays a fixed list of lines.
type Script struct {
	lines []string
	pos   int
}

func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

func (s *Script) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.lines) {
		return "", ErrEndOfInput
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining reports how many scripted lines have not been consumed.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}
