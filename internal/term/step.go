package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// Step is one unit of a multi-part operation. Run returns a short result
// string; a result starting with "skipped" marks a tolerated no-op.
type Step struct {
	Name        string
	Run         func() (string, error)
	Interactive bool
}

func RunSteps(steps []Step) error {
	for _, s := range steps {
		if err := runStep(s); err != nil {
			return err
		}
	}
	return nil
}

func runStep(s Step) error {
	// The spinner needs a terminal; interactive steps and piped output run plain.
	if s.Interactive || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(Dim.Render("  · " + s.Name))
		result, err := s.Run()
		printOutcome(s.Name, result, err)
		return err
	}

	var result string
	var runErr error
	err := spinner.New().
		Title("  " + s.Name).
		Action(func() {
			result, runErr = s.Run()
		}).
		Run()
	if err != nil {
		return err
	}
	printOutcome(s.Name, result, runErr)
	return runErr
}

func printOutcome(name, result string, err error) {
	if err != nil {
		fmt.Printf("  %s %s\n", CrossMark, name)
		return
	}
	if strings.HasPrefix(result, "skipped") {
		fmt.Printf("  %s %s (%s)\n", WarnMark, name, result)
		return
	}
	fmt.Printf("  %s %s\n", CheckMark, name)
}
