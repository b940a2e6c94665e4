package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// tokenizer splits a stream into whitespace-separated tokens, dropping
// everything from a token that begins with '#' to the end of its line.
type tokenizer struct {
	r       *bufio.Reader
	line    int // current line
	tokLine int // line of the most recent token
	buf     []byte
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r), line: 1}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// next returns the next non-comment token, or io.EOF when none remain.
func (t *tokenizer) next() (string, error) {
	for {
		tok, endedLine, err := t.scan()
		if err != nil {
			return "", err
		}
		if tok[0] != '#' {
			return tok, nil
		}
		if !endedLine {
			if err = t.skipLine(); err != nil {
				return "", err
			}
		}
	}
}

// scan reads one raw token. endedLine reports whether the token was
// terminated by a newline.
func (t *tokenizer) scan() (tok string, endedLine bool, err error) {
	var b byte
	for {
		if b, err = t.r.ReadByte(); err != nil {
			return "", false, t.wrap(err)
		}
		if b == '\n' {
			t.line++
		}
		if !isSpace(b) {
			break
		}
	}
	t.tokLine = t.line

	t.buf = append(t.buf[:0], b)
	for {
		b, err = t.r.ReadByte()
		if errors.Is(err, io.EOF) {
			return string(t.buf), false, nil
		}
		if err != nil {
			return "", false, t.wrap(err)
		}
		if isSpace(b) {
			if b == '\n' {
				t.line++
				return string(t.buf), true, nil
			}
			return string(t.buf), false, nil
		}
		t.buf = append(t.buf, b)
	}
}

// skipLine discards input up to and including the next newline.
func (t *tokenizer) skipLine() error {
	_, err := t.r.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return t.wrap(err)
	}
	t.line++

	return nil
}

// int reads the next token as a base-10 integer. what names the field for
// error messages.
func (t *tokenizer) int(what string) (int64, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("line %d: missing %s: %w", t.line, what, ErrMalformedInput)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q is not an integer: %w", t.tokLine, what, tok, ErrMalformedInput)
	}

	return v, nil
}

// wrap passes io.EOF through and tags every other read error as ErrIOFailure.
func (t *tokenizer) wrap(err error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	return fmt.Errorf("line %d: %w: %w", t.line, ErrIOFailure, err)
}
