package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shrimpsizemoose/registrar/internal/validation"
)

func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *CLI) readTrimmed(prompt string) (string, error) {
	text, err := c.readLine(prompt)
	return strings.TrimSpace(text), err
}

func (c *CLI) promptChoice() (string, error) {
	for {
		fmt.Fprintln(c.out, "You may select one of the following:")
		fmt.Fprintln(c.out, " 1) Add student")
		fmt.Fprintln(c.out, " 2) Search student")
		fmt.Fprintln(c.out, " 3) Search course")
		fmt.Fprintln(c.out, " 4) Add course completion")
		fmt.Fprintln(c.out, " 5) Show student's record")
		fmt.Fprintln(c.out, " 0) Exit")

		choice, err := c.readTrimmed("\nWhat is your selection? ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "0", "1", "2", "3", "4", "5":
			return choice, nil
		}
		c.failure.Fprintln(c.out, msgInvalidChoice)
	}
}

func (c *CLI) promptName(prompt string, allowEmpty bool) (string, error) {
	for {
		text, err := c.readTrimmed(prompt)
		if err != nil {
			return "", err
		}
		if validation.IsValidNamePart(text, allowEmpty) {
			return text, nil
		}
		c.failure.Fprintln(c.out, msgInvalidName)
	}
}

func (c *CLI) promptProgram() (string, error) {
	fmt.Fprintln(c.out, "Select student's major:")
	for _, p := range validation.Programs() {
		fmt.Fprintf(c.out, "%s: %s\n", p[0], p[1])
	}
	for {
		text, err := c.readLine("What is your selection? ")
		if err != nil {
			return "", err
		}
		if validation.IsValidProgram(text) {
			return validation.NormalizeProgram(text), nil
		}
		c.failure.Fprintln(c.out, msgInvalidProgram)
	}
}

// promptMinLen re-asks until the trimmed answer has at least c.minQuery
// characters (runes, not bytes); the matcher only ever sees queries that passed this guard.
func (c *CLI) promptMinLen(prompt string) (string, error) {
	for {
		text, err := c.readTrimmed(prompt)
		if err != nil {
			return "", err
		}
		if utf8.RuneCountInString(text) >= c.minQuery {
			return text, nil
		}
		c.failure.Fprintln(c.out, strings.TrimSuffix(prompt, " "))
	}
}
