// Package setup implements the interactive wizard that collects the SSH key
// path and upload destinations, and the interactive destination picker.
package setup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter wraps interactive terminal input behind io.Reader/io.Writer so
// tests can script it.
type Prompter struct {
	reader  io.Reader
	writer  io.Writer
	scanner *bufio.Scanner
}

// NewPrompter creates a Prompter reading from reader and writing prompts to
// writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader:  reader,
		writer:  writer,
		scanner: bufio.NewScanner(reader),
	}
}

// NewDefaultPrompter creates a Prompter on stdin/stdout.
func NewDefaultPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// Prompt displays message and reads one line of input. Exhausted input is
// io.EOF, never an empty answer: callers that loop on invalid input would
// otherwise spin forever once stdin closes.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.writer, message)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// PromptWithDefault reads one line of input, falling back to defaultValue
// when the user just presses enter.
func (p *Prompter) PromptWithDefault(message, defaultValue string) (string, error) {
	result, err := p.Prompt(fmt.Sprintf("%s [%s]: ", message, defaultValue))
	if err != nil {
		return "", err
	}
	if result == "" {
		return defaultValue, nil
	}
	return result, nil
}

// PromptPassword reads a password without echoing it. Outside a terminal
// (tests, pipes) it degrades to a plain line read.
func (p *Prompter) PromptPassword(message string) (string, error) {
	fmt.Fprint(p.writer, message)

	if f, ok := p.reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.writer)
		return string(password), nil
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Confirm asks a yes/no question; empty input selects defaultYes.
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := p.Prompt(fmt.Sprintf("%s [%s]: ", message, hint))
	if err != nil {
		return false, err
	}
	if answer == "" {
		return defaultYes, nil
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select displays a numbered list and returns the chosen index.
func (p *Prompter) Select(message string, items []string) (int, error) {
	fmt.Fprintln(p.writer, message)
	for i, item := range items {
		fmt.Fprintf(p.writer, "  %d) %s\n", i+1, item)
	}

	for {
		answer, err := p.Prompt(fmt.Sprintf("Choice [1-%d]: ", len(items)))
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(items) {
			fmt.Fprintf(p.writer, "Please enter a number between 1 and %d\n", len(items))
			continue
		}
		return choice - 1, nil
	}
}
