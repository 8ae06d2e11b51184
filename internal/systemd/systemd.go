// Package systemd drives systemctl and journalctl for one named unit.
package systemd

import (
	"context"
	"fmt"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
)

type Manager struct {
	Unit string
	run  execx.Runner
}

func NewManager(unit string, run execx.Runner) *Manager {
	return &Manager{Unit: unit, run: run}
}

func (m *Manager) IsActive() bool {
	return m.run.Run("systemctl", "is-active", "--quiet", m.Unit).OK()
}

func (m *Manager) IsEnabled() bool {
	return m.run.Run("systemctl", "is-enabled", "--quiet", m.Unit).OK()
}

func (m *Manager) Start() error {
	return m.ctl("start")
}

func (m *Manager) Stop() error {
	return m.ctl("stop")
}

func (m *Manager) Restart() error {
	return m.ctl("restart")
}

func (m *Manager) Enable() error {
	return m.ctl("enable")
}

func (m *Manager) Disable() error {
	return m.ctl("disable")
}

func (m *Manager) DaemonReload() error {
	if res := m.run.Run("systemctl", "daemon-reload"); !res.OK() {
		return fmt.Errorf("systemctl daemon-reload: %w: %s", res.Err, res.Text())
	}
	return nil
}

// Status streams `systemctl status` to the terminal. The exit code is not
// an error: systemctl reports inactive units with a non-zero status.
func (m *Manager) Status(ctx context.Context) {
	_ = m.run.Stream(ctx, "systemctl", "status", m.Unit, "--no-pager")
}

// Logs follows the unit's journal until ctx is cancelled.
func (m *Manager) Logs(ctx context.Context) error {
	err := m.run.Stream(ctx, "journalctl", "-u", m.Unit, "-n", "50", "-f")
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Manager) ctl(verb string) error {
	if res := m.run.Run("systemctl", verb, m.Unit); !res.OK() {
		return fmt.Errorf("systemctl %s %s: %w: %s", verb, m.Unit, res.Err, res.Text())
	}
	return nil
}
