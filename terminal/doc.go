// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for line-oriented input.
//
// Features:
//   - Scoped non-canonical, non-echoing input mode (RawMode guard)
//   - Byte-at-a-time input with ANSI escape sequence decoding (Decoder)
//   - Buffered output with explicit flush
//   - Persistent colour/style context with set, use and restore semantics
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
