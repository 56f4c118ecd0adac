//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package console

import (
	"io"
	"testing"

	"github.com/creack/pty"

	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/terminal"
)

func TestPromptOverPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	// Drain echo so the tty never blocks on a full output queue
	go io.Copy(io.Discard, ptmx)

	c := New(terminal.NewFile(tty, tty))
	ring := history.New(4)
	ring.Push("earlier")

	if _, err := ptmx.Write([]byte("ab\x1b[Dc\x1b[F!\n")); err != nil {
		t.Fatal(err)
	}
	got, err := c.PromptScrollable("> ", ring)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "acb!" {
		t.Errorf("got %q, want %q", got, "acb!")
	}

	if _, err := ptmx.Write([]byte("\x1b[A\x1b[A\n")); err != nil {
		t.Fatal(err)
	}
	got, err = c.PromptScrollable("> ", ring)
	if err != nil {
		t.Fatal(err)
	}
	if got != "earlier" {
		t.Errorf("history recall got %q", got)
	}
}
