package main

import "strings"

// Lexer is a delimiter-driven splitter over a single input string, consumed
// left to right. It has no concept of lines or files; that is layered on
// top by the CLI when assembling sources (see sources.go).
type Lexer struct {
	rest string
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer { return &Lexer{rest: src} }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Word returns the next whitespace-delimited token, or "" at end of input.
func (lx *Lexer) Word() string {
	if lx.rest == "" {
		return ""
	}
	i := 0
	for i < len(lx.rest) && isSpace(lx.rest[i]) {
		i++
	}
	s := lx.rest[i:]
	j := 0
	for j < len(s) && !isSpace(s[j]) {
		j++
	}
	lx.rest = s[j:]
	return s[:j]
}

// ParseUntil splits on the first occurrence of delim, consuming the
// delimiter itself, and returns everything before it. Used by `(` to skip
// through `)` and by `\` to skip through the end of the line. Returns the
// remainder of the input (with no consumed delimiter) if delim never
// occurs.
func (lx *Lexer) ParseUntil(delim byte) string {
	if lx.rest == "" {
		return ""
	}
	idx := strings.IndexByte(lx.rest, delim)
	if idx < 0 {
		w := lx.rest
		lx.rest = ""
		return w
	}
	w := lx.rest[:idx]
	lx.rest = lx.rest[idx+1:]
	return w
}

// Rest reports the unconsumed remainder of input, mostly useful for tests
// and diagnostics.
func (lx *Lexer) Rest() string { return lx.rest }
