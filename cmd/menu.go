package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
)

type menuEntry struct {
	choice string
	label  string
	run    func(*bufio.Reader) error
}

var menuEntries = []menuEntry{
	{"1", "Install or update", runInstall},
	{"2", "Uninstall", runUninstall},
	{"3", "Restart service", runRestart},
	{"4", "Stop service", runStop},
	{"5", "Service status", runStatus},
	{"6", "View logs", runLogs},
}

const exitChoice = "7"

func runMenu(in *bufio.Reader) error {
	fmt.Println(term.Bold.Render("Phantom Tunnel Manager"))

	for {
		fmt.Println()
		for _, e := range menuEntries {
			fmt.Printf("  %s. %s\n", e.choice, e.label)
		}
		fmt.Printf("  %s. Exit\n", exitChoice)
		fmt.Printf("Select an option [1-%s]: ", exitChoice)

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		choice := strings.TrimSpace(line)
		if choice == exitChoice {
			return nil
		}

		entry, ok := findEntry(choice)
		if !ok {
			term.Warn("Invalid choice %q.", choice)
			continue
		}
		if err := entry.run(in); err != nil {
			term.Error("%v", err)
		}
	}
}

func findEntry(choice string) (menuEntry, bool) {
	for _, e := range menuEntries {
		if e.choice == choice {
			return e, true
		}
	}
	return menuEntry{}, false
}
