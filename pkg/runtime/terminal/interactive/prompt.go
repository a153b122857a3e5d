package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks questions on a terminal and reads one line per answer.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the question and blocks until a line is entered.
// It returns io.EOF only when the input ends before any character is read.
func (p *Prompt) ReadLine(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm is true only for a "y" answer, ignoring case and surrounding spaces.
func (p *Prompt) Confirm(question string) (bool, error) {
	answer, err := p.ReadLine(question)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y", nil
}
