// Package tty adapts a Unix terminal to the machine's [vm.Terminal]
// contract.
package tty

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/hallicrake/lc3/internal/vm"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console is a serial console for the machine, built on Unix terminal I/O[^1].
// Keys pressed on the console are made available to KBSR polling; writes
// from the TRAP routines are written straight through to the terminal.
//
// [1]: See: tty(4), termios(4).
type Console struct {
	in  *os.File
	out *bufio.Writer
	fd  int

	state *term.State

	keyCh chan byte
	errCh chan error
	done  chan struct{}
}

// ErrNoTTY is returned if standard input is not a terminal. Callers should
// fall back to [NewLineConsole] in that case.
var ErrNoTTY = errors.New("console: not a tty")

// NewConsole creates a Console reading from in and writing to out, putting
// in into raw, non-blocking mode. Callers must call [Console.Close] to
// restore the terminal's original state.
func NewConsole(in, out *os.File) (*Console, error) {
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	cons := &Console{
		fd:    fd,
		in:    in,
		out:   bufio.NewWriter(out),
		state: saved,
		keyCh: make(chan byte, 1),
		errCh: make(chan error, 1),
		done:  make(chan struct{}),
	}

	if err := cons.setTerminalParams(0, 0); err != nil {
		_ = term.Restore(fd, saved)
		return nil, err
	}

	go cons.readKeys()

	return cons, nil
}

// setTerminalParams sets the termios VMIN and VTIME fields, controlling how
// a read() on the descriptor blocks. VMIN=0, VTIME=0 makes reads return
// immediately with whatever bytes (zero or more) are available.
func (c *Console) setTerminalParams(vmin, vtime byte) error {
	_ = syscall.SetNonblock(c.fd, true)

	termIO, err := unix.IoctlGetTermios(c.fd, getTermiosIoctl)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	termIO.Cc[unix.VMIN] = vmin
	termIO.Cc[unix.VTIME] = vtime

	if err := unix.IoctlSetTermios(c.fd, setTermiosIoctl, termIO); err != nil {
		return fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	return nil
}

// readKeys reads one byte at a time from the terminal and forwards it to
// keyCh until Close is called or a read fails.
func (c *Console) readKeys() {
	var buf [1]byte

	for {
		n, err := c.in.Read(buf[:])
		if err != nil {
			select {
			case c.errCh <- err:
			default:
			}

			return
		}

		if n == 0 {
			continue
		}

		select {
		case c.keyCh <- buf[0]:
		case <-c.done:
			return
		}

		select {
		case <-c.done:
			return
		default:
		}
	}
}

// CheckKey reports whether a keystroke is buffered, without consuming it.
func (c *Console) CheckKey() bool {
	return len(c.keyCh) > 0
}

// ReadChar blocks until a keystroke is available and returns it.
func (c *Console) ReadChar() (byte, error) {
	select {
	case b := <-c.keyCh:
		return b, nil
	case err := <-c.errCh:
		return 0, err
	case <-c.done:
		return 0, io.EOF
	}
}

// WriteChar buffers a single byte for output.
func (c *Console) WriteChar(b byte) error {
	return c.out.WriteByte(b)
}

// Flush writes any buffered output to the terminal.
func (c *Console) Flush() error {
	return c.out.Flush()
}

// Close restores the terminal to its original state and stops the reader
// goroutine.
func (c *Console) Close() error {
	close(c.done)
	return term.Restore(c.fd, c.state)
}

var _ vm.Terminal = (*Console)(nil)
