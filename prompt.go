package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InputProvider supplies values the user did not give on the command line
type InputProvider interface {
	AnimalName() (string, error)
	SkinType(options []string) (string, error)
}

// StdinPrompter asks for input on a terminal
type StdinPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewStdinPrompter creates a prompter reading from in and writing prompts to out
func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewScanner(in), out: out}
}

func (p *StdinPrompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", newError("prompt", KindInvalidInput, "", err)
		}
		return "", newError("prompt", KindInvalidInput, "", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AnimalName asks until a non-empty name is entered
func (p *StdinPrompter) AnimalName() (string, error) {
	for {
		name, err := p.readLine("Enter a name of an animal: ")
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		fmt.Fprintln(p.out, "Please enter a value.")
	}
}

// SkinType lists options and asks until a valid choice is made.
// An empty answer selects all skin types.
func (p *StdinPrompter) SkinType(options []string) (string, error) {
	printOptions(p.out, options)
	for {
		input, err := p.readLine("Enter a skin type, its number, or press Enter for All: ")
		if err != nil {
			return "", err
		}
		if choice, ok := ResolveChoice(options, input); ok {
			return choice, nil
		}
		fmt.Fprintln(p.out, "Invalid choice. Please use one of the listed skin types.")
	}
}

// printOptions writes the numbered skin type list
func printOptions(w io.Writer, options []string) {
	if len(options) == 0 {
		fmt.Fprintln(w, "No skin type data found.")
		return
	}
	fmt.Fprintln(w, "Available skin types:")
	for i, opt := range options {
		fmt.Fprintf(w, "%d. %s\n", i+1, opt)
	}
}

// staticInput answers from fixed values; used when prompting is disabled
type staticInput struct {
	name string
}

func (s staticInput) AnimalName() (string, error) {
	if s.name == "" {
		return "", newError("prompt", KindInvalidInput, "", errors.New("animal name required: use --animal-name"))
	}
	return s.name, nil
}

func (s staticInput) SkinType(options []string) (string, error) {
	return AllValues, nil
}
