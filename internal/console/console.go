// Package console provides line-oriented terminal I/O for the game.
// Input is pumped into a channel so the game loop can race a blocking
// read against the turn timer.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/nkuznetsov/wordduel/internal/model"
)

// Console wraps a line reader and a writer
type Console struct {
	out   io.Writer
	lines chan string
}

// New creates a console over the given reader and writer and starts the
// input pump. The lines channel is closed when the reader reaches EOF.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string),
	}
	go c.pump(in)
	return c
}

func (c *Console) pump(in io.Reader) {
	defer close(c.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
}

// Lines returns the channel of input lines
func (c *Console) Lines() <-chan string {
	return c.lines
}

// ReadLine blocks for the next input line
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", model.ErrInputClosed
		}
		return line, nil
	}
}

// Println writes a line to the console
func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}
