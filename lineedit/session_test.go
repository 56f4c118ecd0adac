package lineedit

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/terminal"
)

// fakeTerm records raw mode transitions and buffers writes until Flush
type fakeTerm struct {
	in      *bytes.Reader
	pending bytes.Buffer
	out     bytes.Buffer

	rawErr     error
	releaseErr error
	readErr    error // Returned once input is exhausted, instead of io.EOF
	flushErr   error

	acquired  int
	released  int
	rawAtRead []bool
}

func newFakeTerm(input string) *fakeTerm {
	return &fakeTerm{in: bytes.NewReader([]byte(input))}
}

type fakeGuard struct{ t *fakeTerm }

func (g fakeGuard) Release() error {
	g.t.released++
	return g.t.releaseErr
}

func (f *fakeTerm) Raw() (terminal.Guard, error) {
	if f.rawErr != nil {
		return nil, f.rawErr
	}
	f.acquired++
	return fakeGuard{f}, nil
}

func (f *fakeTerm) ReadByte() (byte, error) {
	f.rawAtRead = append(f.rawAtRead, f.acquired > f.released)
	b, err := f.in.ReadByte()
	if err == io.EOF && f.readErr != nil {
		return 0, f.readErr
	}
	return b, err
}

func (f *fakeTerm) Write(p []byte) (int, error) {
	return f.pending.Write(p)
}

func (f *fakeTerm) Flush() error {
	if f.flushErr != nil {
		return f.flushErr
	}
	f.out.Write(f.pending.Bytes())
	f.pending.Reset()
	return nil
}

func TestEditLine_RoundTripsPrintable(t *testing.T) {
	var line []byte
	for c := byte(0x20); c < 0x7f; c++ {
		line = append(line, c)
	}

	term := newFakeTerm(string(line) + "\n")
	ring := history.New(4)
	got, err := EditLine(term, ring, Copy(), true)
	if err != nil {
		t.Fatalf("EditLine: %v", err)
	}
	if got != string(line) {
		t.Errorf("got %q, want %q", got, line)
	}
	if term.out.String() != string(line)+"\n" {
		t.Errorf("echo %q", term.out.String())
	}
	if h, ok := ring.Get(0); !ok || h != string(line) {
		t.Errorf("history = %q, %v", h, ok)
	}
	if term.acquired != 1 || term.released != 1 {
		t.Errorf("raw acquired %d released %d", term.acquired, term.released)
	}
	for i, raw := range term.rawAtRead {
		if !raw {
			t.Fatalf("read %d happened outside raw mode", i)
		}
	}
}

func TestEditLine_EditingKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"backspace", "abc\x7fd\n", "abd"},
		{"shift backspace", "abc\x08d\n", "abd"},
		{"home right insert", "abc\x1b[H\x1b[C\x1b[CX\n", "abXc"},
		{"delete tilde", "abc\x1b[H\x1b[3~\n", "bc"},
		{"end tilde", "abc\x1b[H\x1b[4~d\n", "abcd"},
		{"broken sequence is literal", "a\x1b[Zb\n", "aZb"},
		{"escaped linefeed is literal", "a\x1b\nb\n", "a\nb"},
		{"carriage return is literal", "a\rb\n", "a\rb"},
		{"empty line", "\n", ""},
		{"repeated escape", "ab\x1b\x1b[D\n", "ab"},
		{"escape after bracket", "ab\x1b[\x1b[Dc\n", "acb"},
		{"escape after parameter", "ab\x1b[3\x1b[D\n", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EditLine(newFakeTerm(tt.input), nil, Copy(), true)
			if err != nil {
				t.Fatalf("EditLine: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditLine_EscapeNotEchoed(t *testing.T) {
	term := newFakeTerm("ab\x1b\x1b[D\x1b[\x1b[Dc\n")
	got, err := EditLine(term, nil, Copy(), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "cab" {
		t.Errorf("got %q, want %q", got, "cab")
	}
	if want := "ab\b\bcab\b\b\n"; term.out.String() != want {
		t.Errorf("echo %q, want %q", term.out.String(), want)
	}
}

func TestEditLine_History(t *testing.T) {
	ring := history.New(10)
	for _, in := range []string{"one\n", "two\n"} {
		if _, err := EditLine(newFakeTerm(in), ring, Copy(), true); err != nil {
			t.Fatal(err)
		}
	}

	got, err := EditLine(newFakeTerm("\x1b[A\x1b[A!\n"), ring, Copy(), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "one!" {
		t.Errorf("got %q, want %q", got, "one!")
	}
	if ring.Len() != 3 {
		t.Errorf("history length %d, want 3", ring.Len())
	}
}

func TestEditLine_ZeroCapacityHistory(t *testing.T) {
	ring := history.New(0)
	got, err := EditLine(newFakeTerm("pw\n"), ring, Substitute('*'), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "pw" || ring.Len() != 0 {
		t.Errorf("got %q, history len %d", got, ring.Len())
	}
}

func TestEditLine_SuppressWritesNothing(t *testing.T) {
	term := newFakeTerm("hid\x1b[D\x1b[Dx\x7f\x1b[F\x1b[H\x1b[3~den\n")
	got, err := EditLine(term, history.New(2), Suppress(), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "denid" {
		t.Errorf("got %q, want %q", got, "denid")
	}
	if term.out.Len() != 0 {
		t.Errorf("suppress wrote %q", term.out.String())
	}
}

func TestEditLine_NewlineFlag(t *testing.T) {
	term := newFakeTerm("ok\n")
	if _, err := EditLine(term, nil, Copy(), false); err != nil {
		t.Fatal(err)
	}
	if term.out.String() != "ok" {
		t.Errorf("wrote %q, want no newline", term.out.String())
	}

	term = newFakeTerm("ok\n")
	if _, err := EditLine(term, nil, Substitute('#'), true); err != nil {
		t.Fatal(err)
	}
	if term.out.String() != "##\n" {
		t.Errorf("wrote %q", term.out.String())
	}
}

func TestEditLine_ChunkedEscape(t *testing.T) {
	// The decoder sees one byte per read, so any chunking of ESC [ A behaves the same
	ring := history.New(3)
	ring.Push("prev")
	got, err := EditLine(newFakeTerm("\x1b[A\n"), ring, Copy(), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "prev" {
		t.Errorf("got %q", got)
	}
}

func TestEditLine_EOFReturnsPartial(t *testing.T) {
	ring := history.New(3)
	term := newFakeTerm("part")
	got, err := EditLine(term, ring, Copy(), true)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if got != "part" {
		t.Errorf("got %q", got)
	}
	if ring.Len() != 0 {
		t.Error("partial line added to history")
	}
	if term.released != 1 {
		t.Errorf("released %d times", term.released)
	}
}

func TestEditLine_ReleasesOnFailure(t *testing.T) {
	readFail := errors.New("device gone")
	flushFail := errors.New("broken pipe")

	t.Run("read", func(t *testing.T) {
		term := newFakeTerm("ab")
		term.readErr = readFail
		_, err := EditLine(term, nil, Copy(), true)
		if !errors.Is(err, readFail) {
			t.Errorf("err = %v", err)
		}
		if term.released != 1 {
			t.Errorf("released %d", term.released)
		}
	})

	t.Run("flush", func(t *testing.T) {
		term := newFakeTerm("ab\n")
		term.flushErr = flushFail
		_, err := EditLine(term, nil, Copy(), true)
		if !errors.Is(err, flushFail) {
			t.Errorf("err = %v", err)
		}
		if term.released != 1 {
			t.Errorf("released %d", term.released)
		}
		if len(term.rawAtRead) != 0 {
			t.Error("read input after initial flush failed")
		}
	})

	t.Run("release joins", func(t *testing.T) {
		restoreFail := errors.New("tcsetattr failed")
		term := newFakeTerm("ab")
		term.readErr = readFail
		term.releaseErr = restoreFail
		_, err := EditLine(term, nil, Copy(), true)
		if !errors.Is(err, readFail) || !errors.Is(err, restoreFail) {
			t.Errorf("err = %v, want both failures", err)
		}
	})

	t.Run("release after success", func(t *testing.T) {
		restoreFail := errors.New("tcsetattr failed")
		term := newFakeTerm("ab\n")
		term.releaseErr = restoreFail
		line, err := EditLine(term, nil, Copy(), true)
		if !errors.Is(err, restoreFail) {
			t.Errorf("err = %v", err)
		}
		if line != "ab" {
			t.Errorf("line = %q", line)
		}
	})
}

func TestEditLine_RawModeUnavailable(t *testing.T) {
	term := newFakeTerm("never read\n")
	term.rawErr = terminal.ErrNotTerminal

	_, err := EditLine(term, nil, Copy(), true)
	if !errors.Is(err, terminal.ErrNotTerminal) {
		t.Fatalf("err = %v", err)
	}
	if len(term.rawAtRead) != 0 || term.released != 0 {
		t.Errorf("reads %d, releases %d", len(term.rawAtRead), term.released)
	}
}

func TestEdit_RefuseHook(t *testing.T) {
	var refused []terminal.Key
	opts := Options{
		Echo:        Copy(),
		EmitNewline: true,
		OnRefuse:    func(k terminal.Key) { refused = append(refused, k) },
	}
	if _, err := Edit(newFakeTerm("\x7f\x1b[Dx\x1b[C\n"), nil, opts); err != nil {
		t.Fatal(err)
	}
	want := []terminal.Key{terminal.KeyBackspace, terminal.KeyLeft, terminal.KeyRight}
	if len(refused) != len(want) {
		t.Fatalf("refused = %v, want %v", refused, want)
	}
	for i := range want {
		if refused[i] != want[i] {
			t.Errorf("refused[%d] = %v, want %v", i, refused[i], want[i])
		}
	}
}
