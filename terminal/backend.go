package terminal

import "errors"

// ErrNotTerminal is returned when raw mode is requested on a stream that is not a terminal
var ErrNotTerminal = errors.New("input is not a terminal")

// Guard is a scoped terminal resource
// Release restores the state captured at acquisition and is safe to call multiple times
type Guard interface {
	Release() error
}

// Backend abstracts platform-specific terminal operations.
// This interface allows the terminal package to run against a real tty or any
// byte stream (pipes, tests).
type Backend interface {
	// Raw disables canonical input and echo until the returned guard is released
	Raw() (Guard, error)

	// I/O
	// Read blocks until at least one byte is available or an error occurs.
	Read(p []byte) (int, error)
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)
}

// streamBackend serves plain readers and writers; raw mode is unavailable
type streamBackend struct {
	r interface{ Read([]byte) (int, error) }
	w interface{ Write([]byte) (int, error) }
}

func (b *streamBackend) Raw() (Guard, error) {
	return nil, ErrNotTerminal
}

func (b *streamBackend) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b *streamBackend) Write(p []byte) (int, error) {
	return b.w.Write(p)
}
