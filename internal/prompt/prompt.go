// internal/prompt/prompt.go
//
// Line-oriented input collection. A Collector writes a prompt, reads one
// line, and keeps asking until the answer is one of the accepted options.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kingrea/garden-advice/internal/advice"
)

var (
	// ErrNoInput is returned when input ends before a valid answer arrives.
	ErrNoInput = errors.New("prompt: input ended before a valid answer")
	// ErrNoOptions is returned when Ask is called with an empty option set.
	ErrNoOptions = errors.New("prompt: no accepted options")
)

// Collector reads answers from r and writes prompts and hints to w.
type Collector struct {
	reader *bufio.Reader
	out    io.Writer

	// OnReject, when set, observes every rejected answer.
	OnReject func(prompt, answer string)
}

// New creates a Collector over the given streams.
func New(r io.Reader, w io.Writer) *Collector {
	return &Collector{reader: bufio.NewReader(r), out: w}
}

// Ask writes prompt and returns the first normalized answer found in options.
// Invalid answers are reported with the list of options and the prompt is
// shown again. Ask only returns an error when input ends or cannot be read.
func (c *Collector) Ask(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	accepted := make(map[string]struct{}, len(options))
	for _, opt := range options {
		accepted[advice.Normalize(opt)] = struct{}{}
	}
	for {
		line, err := c.readLine(prompt)
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("prompt: read answer: %w", err)
		}
		answer := advice.Normalize(line)
		if _, ok := accepted[answer]; ok {
			return answer, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("%w (%s)", ErrNoInput, strings.TrimSpace(prompt))
		}
		if c.OnReject != nil {
			c.OnReject(prompt, answer)
		}
		fmt.Fprintf(c.out, "Invalid input. Please choose from: %s.\n", strings.Join(options, ", "))
	}
}

// Println writes a line of output to the collector's writer.
func (c *Collector) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Print writes output without a trailing newline.
func (c *Collector) Print(args ...any) {
	fmt.Fprint(c.out, args...)
}

func (c *Collector) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), err
}
