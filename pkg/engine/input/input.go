package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoOptions is returned when a choice is requested from an empty menu.
var ErrNoOptions = errors.New("no options to choose from")

// Prompter shows the messages around a numbered choice.
type Prompter interface {
	// PromptChoice asks the player to enter a choice.
	PromptChoice()
	// RejectChoice tells the player the last line was not a valid choice.
	RejectChoice()
}

// Reader reads player input one line at a time.
type Reader struct {
	in *bufio.Reader
}

// NewReader creates a line reader over in.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(in)}
}

// GetInput reads a line of input, without the line terminator.
// A final line with no trailing newline is returned as-is; io.EOF is only
// reported once nothing is left to read.
func (r *Reader) GetInput() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// GetChoice keeps prompting until the player enters a number between 1 and
// options inclusive, and returns it. Anything else is rejected and the prompt
// repeats. The only error is a failure to read from the input stream.
func (r *Reader) GetChoice(p Prompter, options int) (int, error) {
	if options < 1 {
		return 0, ErrNoOptions
	}

	for {
		p.PromptChoice()

		line, err := r.GetInput()
		if err != nil {
			return 0, fmt.Errorf("cannot read choice: %w", err)
		}

		if n, ok := parseChoice(line, options); ok {
			return n, nil
		}

		p.RejectChoice()
	}
}

// parseChoice reports whether line holds a number in [1, options].
func parseChoice(line string, options int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}

	if n < 1 || n > options {
		return 0, false
	}

	return n, true
}
