package lineedit

import "fmt"

// EchoMode selects how typed characters are shown
type EchoMode uint8

const (
	EchoCopy       EchoMode = iota // Echo the typed character
	EchoSubstitute                 // Echo a fixed mask character
	EchoSuppress                   // Echo nothing, not even cursor movement
)

// Echo decides what is written for each character of the buffer
// The zero value copies input.
type Echo struct {
	Mode EchoMode
	Mask byte // For EchoSubstitute
}

// Copy echoes characters as typed
func Copy() Echo {
	return Echo{Mode: EchoCopy}
}

// Substitute echoes mask in place of every character, e.g. for passwords
func Substitute(mask byte) Echo {
	return Echo{Mode: EchoSubstitute, Mask: mask}
}

// Suppress echoes nothing
func Suppress() Echo {
	return Echo{Mode: EchoSuppress}
}

// Visible reports whether anything is written to the terminal
func (e Echo) Visible() bool {
	return e.Mode != EchoSuppress
}

// Render returns the byte shown for c
func (e Echo) Render(c byte) byte {
	if e.Mode == EchoSubstitute {
		return e.Mask
	}
	return c
}

// appendRendered appends the rendering of p to dst
func (e Echo) appendRendered(dst, p []byte) []byte {
	if e.Mode != EchoSubstitute {
		return append(dst, p...)
	}
	for range p {
		dst = append(dst, e.Mask)
	}
	return dst
}

func (e Echo) String() string {
	switch e.Mode {
	case EchoCopy:
		return "copy"
	case EchoSubstitute:
		return fmt.Sprintf("substitute(%q)", e.Mask)
	case EchoSuppress:
		return "suppress"
	}
	return fmt.Sprintf("echo(%d)", uint8(e.Mode))
}
