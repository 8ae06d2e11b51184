package cmd

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/doctor"
)

func TestFindEntry(t *testing.T) {
	tests := []struct {
		choice string
		label  string
		ok     bool
	}{
		{"1", "Install or update", true},
		{"2", "Uninstall", true},
		{"3", "Restart service", true},
		{"4", "Stop service", true},
		{"5", "Service status", true},
		{"6", "View logs", true},
		{"7", "", false},
		{"0", "", false},
		{"8", "", false},
		{"install", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		entry, ok := findEntry(tt.choice)
		if ok != tt.ok {
			t.Errorf("findEntry(%q) ok = %v, want %v", tt.choice, ok, tt.ok)
			continue
		}
		if ok && entry.label != tt.label {
			t.Errorf("findEntry(%q) label = %q, want %q", tt.choice, entry.label, tt.label)
		}
	}
}

func TestRunMenuExitsOnSeven(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("7\n"))
	if err := runMenu(in); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
}

func TestRunMenuExitsOnEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	if err := runMenu(in); err != nil {
		t.Fatalf("runMenu on EOF: %v", err)
	}
}

func TestRunMenuDispatchesAndContinues(t *testing.T) {
	orig := menuEntries
	defer func() { menuEntries = orig }()

	var ran int
	menuEntries = []menuEntry{
		{"1", "Fails but menu survives", func(*bufio.Reader) error {
			ran++
			return errors.New("boom")
		}},
	}

	in := bufio.NewReader(strings.NewReader("1\n9\n1\n7\n"))
	if err := runMenu(in); err != nil {
		t.Fatalf("runMenu: %v", err)
	}
	if ran != 2 {
		t.Fatalf("operation ran %d times, want 2", ran)
	}
}

func TestRunUninstallCancelledChangesNothing(t *testing.T) {
	// A non-affirmative answer returns before any teardown is built.
	for _, answer := range []string{"n\n", "no\n", "\n", "maybe\n"} {
		in := bufio.NewReader(strings.NewReader(answer))
		if err := runUninstall(in); err != nil {
			t.Errorf("runUninstall(%q): %v", strings.TrimSpace(answer), err)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	for _, s := range []doctor.Status{doctor.Pass, doctor.Warn, doctor.Fail} {
		if statusIcon(s) == "" {
			t.Errorf("statusIcon(%d) is empty", s)
		}
	}
}

func TestDoctorRunFnInjectable(t *testing.T) {
	prev := doctorRunFn
	defer func() { doctorRunFn = prev }()

	var called bool
	doctorRunFn = func() doctor.Report {
		called = true
		return doctor.Report{}
	}

	if err := doctorCmd.RunE(doctorCmd, nil); err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !called {
		t.Fatal("expected doctorRunFn to be called")
	}
}
