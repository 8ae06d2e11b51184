// Package pkgmgr ensures the host tools an install needs are present,
// driving whichever supported package manager exists.
package pkgmgr

import (
	"errors"
	"fmt"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
)

// ErrNoManager means neither supported package manager is on PATH. Callers
// treat this as a warning, not a failure.
var ErrNoManager = errors.New("no supported package manager found (apt-get or yum)")

var managers = []struct {
	name    string
	install []string
}{
	{name: "apt-get", install: []string{"install", "-y"}},
	{name: "yum", install: []string{"install", "-y"}},
}

type Manager struct {
	run execx.Runner
}

func New(run execx.Runner) *Manager {
	return &Manager{run: run}
}

// Detect returns the first supported package manager present on PATH.
func (m *Manager) Detect() string {
	for _, pm := range managers {
		if m.run.Exists(pm.name) {
			return pm.name
		}
	}
	return ""
}

// EnsureInstalled installs any of the named tools that are missing.
func (m *Manager) EnsureInstalled(tools ...string) error {
	var missing []string
	for _, tool := range tools {
		if !m.run.Exists(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	pm := m.Detect()
	if pm == "" {
		return ErrNoManager
	}

	for _, entry := range managers {
		if entry.name != pm {
			continue
		}
		args := append(append([]string{}, entry.install...), missing...)
		if res := m.run.Run(pm, args...); !res.OK() {
			return fmt.Errorf("installing %v with %s: %w: %s", missing, pm, res.Err, res.Text())
		}
		return nil
	}
	return ErrNoManager
}
