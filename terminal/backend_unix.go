//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in   *os.File
	out  *os.File
	inFd int
}

func newFileBackend(in, out *os.File) Backend {
	return &unixBackend{
		in:   in,
		out:  out,
		inFd: int(in.Fd()),
	}
}

func (b *unixBackend) Raw() (Guard, error) {
	return EnterRawMode(b.inFd)
}

func (b *unixBackend) Read(p []byte) (int, error) {
	return b.in.Read(p)
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// RawMode holds the terminal attributes saved before non-canonical mode was entered
type RawMode struct {
	fd       int
	saved    *term.State
	released bool
}

// EnterRawMode disables canonical input and echo on fd
// Only ICANON and ECHO are cleared: signal keys keep working, CR is still mapped to LF
// on input and output post-processing stays on, so Enter arrives as 0x0A and a written
// newline returns the carriage.
func EnterRawMode(fd int) (*RawMode, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	saved, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("save terminal state: %w", err)
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("read termios: %w", err)
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	log.Printf("terminal: raw mode on fd %d", fd)
	return &RawMode{fd: fd, saved: saved}, nil
}

// Release restores the saved attributes
func (r *RawMode) Release() error {
	if r == nil || r.released {
		return nil
	}
	r.released = true
	if err := term.Restore(r.fd, r.saved); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	log.Printf("terminal: restored fd %d", r.fd)
	return nil
}
