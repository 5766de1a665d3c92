package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Prompter talks to the user through a reader and a writer, usually stdin and stdout.
type Prompter struct {
	out   io.Writer
	lines chan string

	// readErr is written before lines is closed.
	readErr error
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{
		out:   out,
		lines: make(chan string),
	}

	go prompter.readLines(in)

	return prompter
}

func (that *Prompter) readLines(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.readErr = scanner.Err()
}

// Ask writes the prompt and blocks until a line arrives or ctx is done.
func (that *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if _, err := io.WriteString(that.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}

		if that.readErr != nil {
			return "", fmt.Errorf("failed to read response: %w", that.readErr)
		}

		return "", io.EOF
	}
}

func (that *Prompter) Say(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
