package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice kinds.
const (
	// KindSolution is a solution manifest found in the working directory.
	KindSolution = "solution"
	// KindProject is a member project of a solution.
	KindProject = "project"
)

// Choice represents a selectable solution or project.
type Choice struct {
	Kind   string
	Name   string
	Detail string // optional label for display only
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelect prompts the user to select one entry from a list.
	PromptSelect(title string, choices []Choice) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance.
// Prompts are written to stderr so that stdout only carries reports.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stderr,
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.writer, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelect prompts the user to select one entry from a list.
func (p *realPrompt) PromptSelect(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectBubbleTea(title, choices, p.writer)
}
