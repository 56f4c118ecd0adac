//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "os"

// Raw mode needs termios; other platforms get a plain stream backend
func newFileBackend(in, out *os.File) Backend {
	return &streamBackend{r: in, w: out}
}

func resetTerminalMode() {}
