package installer

import (
	"os"
	"path/filepath"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
)

// Uninstall tears the installation down. Every step tolerates an already
// clean target, so running it twice is harmless. Confirmation is the
// caller's job.
func (i *Installer) Uninstall() error {
	steps := []term.Step{
		{Name: "Stopping and disabling service", Run: i.removeService},
		{Name: "Terminating tunnel processes", Run: i.killProcesses},
		{Name: "Removing service unit", Run: i.removeUnit},
		{Name: "Removing executables", Run: i.removeBinaries},
		{Name: "Removing working directory", Run: i.removeWorkDir},
		{Name: "Removing legacy files", Run: i.removeLegacy},
		{Name: "Removing temporary files", Run: i.removeTempFiles},
	}
	return term.RunSteps(steps)
}

func (i *Installer) removeService() (string, error) {
	if _, err := os.Stat(i.Paths.UnitFile); os.IsNotExist(err) {
		return "skipped (not installed)", nil
	}
	if i.Service.IsActive() {
		if err := i.Service.Stop(); err != nil {
			return "", err
		}
	}
	if i.Service.IsEnabled() {
		// Best effort: a unit systemd no longer knows about is fine.
		_ = i.Service.Disable()
	}
	return "done", nil
}

func (i *Installer) killProcesses() (string, error) {
	// pkill exits non-zero when nothing matched; that is not an error.
	killed := false
	for _, name := range []string{filepath.Base(i.Paths.Binary), filepath.Base(i.Paths.Symlink)} {
		if i.Run.Run("pkill", "-f", name).OK() {
			killed = true
		}
	}
	if !killed {
		return "skipped (no processes found)", nil
	}
	return "done", nil
}

func (i *Installer) removeUnit() (string, error) {
	if _, err := os.Stat(i.Paths.UnitFile); os.IsNotExist(err) {
		return "skipped (nothing to remove)", nil
	}
	if err := os.Remove(i.Paths.UnitFile); err != nil {
		return "", err
	}
	if err := i.Service.DaemonReload(); err != nil {
		return "", err
	}
	return "done", nil
}

func (i *Installer) removeBinaries() (string, error) {
	removed := false
	for _, path := range []string{i.Paths.Symlink, i.Paths.Binary} {
		switch err := os.Remove(path); {
		case err == nil:
			removed = true
		case os.IsNotExist(err):
		default:
			return "", err
		}
	}
	if !removed {
		return "skipped (nothing to remove)", nil
	}
	return "done", nil
}

func (i *Installer) removeWorkDir() (string, error) {
	if _, err := os.Stat(i.Paths.WorkDir); os.IsNotExist(err) {
		return "skipped (nothing to remove)", nil
	}
	if err := os.RemoveAll(i.Paths.WorkDir); err != nil {
		return "", err
	}
	return "done", nil
}

func (i *Installer) removeLegacy() (string, error) {
	removed := false
	for _, name := range i.Paths.LegacyFiles {
		err := os.Remove(filepath.Join(i.Paths.LegacyDir, name))
		if err == nil {
			removed = true
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	if !removed {
		return "skipped (nothing to remove)", nil
	}
	return "done", nil
}

func (i *Installer) removeTempFiles() (string, error) {
	removed := false
	for _, path := range i.Paths.TempFiles {
		err := os.Remove(path)
		if err == nil {
			removed = true
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	if !removed {
		return "skipped (nothing to remove)", nil
	}
	return "done", nil
}
