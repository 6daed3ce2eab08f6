//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the process's terminal state: the saved canonical mode and
// the alternate screen. Begin and End are called exactly once each; End is
// safe to call again and must run on every exit path so the user's terminal
// is never left in raw mode.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *term.State

	active bool
}

// NewSession creates a session over stdin/stdout.
func NewSession() *Session {
	return &Session{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Begin saves the current terminal mode, switches to the alternate screen
// and puts input into immediate, non-echoing mode with flow control
// disabled. Canonical line editing, echo and ^S/^Q are the only things
// turned off; everything else (ICRNL included) keeps its prior setting,
// so Enter is delivered as '\n'.
func (s *Session) Begin() error {
	if s.active {
		return nil
	}

	if !term.IsTerminal(s.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	saved, err := term.GetState(s.inFd)
	if err != nil {
		return fmt.Errorf("save terminal state: %w", err)
	}

	tio, err := unix.IoctlGetTermios(s.inFd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	tio.Lflag &^= unix.ICANON | unix.ECHO
	tio.Iflag &^= unix.IXON | unix.IXOFF
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.inFd, unix.TCSETS, tio); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}

	s.saved = saved
	s.active = true

	s.out.Write(CSIAltScreenEnter)
	s.out.Write(CSIHome)
	return nil
}

// End restores the saved terminal mode and returns to the primary screen.
// Safe to call multiple times.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.active = false

	s.out.Write(CSISGR0)
	s.out.Write(CSICursorShow)
	s.out.Write(CSIAltScreenExit)

	if s.saved != nil {
		term.Restore(s.inFd, s.saved)
	}
}

// Read blocks until the terminal delivers a batch of input bytes and
// returns a copy of it. Escape sequences such as arrow keys arrive as one
// batch. Returns io.EOF when the input stream closes.
func (s *Session) Read() ([]byte, error) {
	buf := make([]byte, 64)

	for {
		n, err := unix.Read(s.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}
		if n == 0 {
			return nil, io.EOF
		}

		ret := make([]byte, n)
		copy(ret, buf[:n])
		return ret, nil
	}
}

// Size returns the terminal dimensions, with an 80x24 fallback
func (s *Session) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

// Write sends raw bytes to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
