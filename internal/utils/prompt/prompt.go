// Package prompt reads answers to sequential terminal questions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on w and reads one line per answer from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing questions to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Ask prints the question and blocks for one line of input, returned trimmed.
//
// End of input yields whatever was read so far, which may be empty.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.w, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
