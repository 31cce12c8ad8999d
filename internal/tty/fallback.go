package tty

import (
	"bufio"
	"io"

	"github.com/hallicrake/lc3/internal/vm"
)

// LineConsole adapts a plain, non-interactive stream (a pipe or a
// redirected file) to [vm.Terminal]. It is the fallback used when standard
// input is not a terminal: [NewConsole] fails with [ErrNoTTY] and the
// caller falls back to this instead of raw-mode keystroke polling.
type LineConsole struct {
	in  *bufio.Reader
	out *bufio.Writer

	pending []byte
	eof     bool
}

// NewLineConsole creates a LineConsole reading from in and writing to out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// CheckKey reports whether a byte is buffered or can be read from the
// stream. Since the underlying stream is not a terminal, this greedily
// reads ahead one byte to answer the question; that read blocks until a
// byte or end of stream arrives, so on a pipe with no pending data CheckKey
// does not return immediately.
func (c *LineConsole) CheckKey() bool {
	if len(c.pending) > 0 {
		return true
	}

	if c.eof {
		return false
	}

	b, err := c.in.ReadByte()
	if err != nil {
		c.eof = true
		return false
	}

	c.pending = append(c.pending, b)

	return true
}

// ReadChar returns the next byte, reading one if CheckKey hasn't already.
// At end of stream it returns 0, which matches a GETC or IN trap reading
// past the end of piped input.
func (c *LineConsole) ReadChar() (byte, error) {
	if len(c.pending) > 0 {
		b := c.pending[0]
		c.pending = c.pending[1:]

		return b, nil
	}

	b, err := c.in.ReadByte()
	if err == io.EOF {
		c.eof = true
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return b, nil
}

// WriteChar buffers a single byte for output.
func (c *LineConsole) WriteChar(b byte) error {
	return c.out.WriteByte(b)
}

// Flush writes any buffered output to the stream.
func (c *LineConsole) Flush() error {
	return c.out.Flush()
}

var _ vm.Terminal = (*LineConsole)(nil)
