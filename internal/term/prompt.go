package term

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompt reads one line from r, returning def when the answer is empty.
func Prompt(r *bufio.Reader, label, def string) (string, error) {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, Dim.Render(def))
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// PromptSecret reads without echo when stdin is a terminal. Scripted and
// piped input falls back to a plain line read from r.
func PromptSecret(r *bufio.Reader, label, def string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return Prompt(r, label, def)
	}

	fmt.Printf("%s [%s]: ", label, Dim.Render("hidden"))
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(string(raw))
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm accepts only y/yes (case-insensitive) as affirmative.
func Confirm(r *bufio.Reader, label string) (bool, error) {
	fmt.Printf("%s [y/N]: ", label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	return Affirmative(line), nil
}

func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
