// Package installer orchestrates the install, update, uninstall, and
// service-lifecycle operations for the Phantom Tunnel binary.
package installer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/config"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/pkgmgr"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/release"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/setup"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/systemd"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
)

type Installer struct {
	Settings *config.Settings
	Paths    config.Paths
	// Arch is the GOARCH value used to pick a release asset.
	Arch     string
	Run      execx.Runner
	Service  *systemd.Manager
	Releases *release.Client
	In       *bufio.Reader
	// Grace is how long to wait before the final is-active check.
	Grace time.Duration
}

func New(settings *config.Settings, paths config.Paths, run execx.Runner, in *bufio.Reader) *Installer {
	return &Installer{
		Settings: settings,
		Paths:    paths,
		Arch:     runtime.GOARCH,
		Run:      run,
		Service:  systemd.NewManager(settings.Service, run),
		Releases: release.NewClient(settings.Repo),
		In:       in,
		Grace:    2 * time.Second,
	}
}

// Install fetches the newest release and installs or updates the managed
// binary, its unit file, and its first-run configuration. Nothing under the
// install paths is touched until a download has succeeded.
func (i *Installer) Install() error {
	asset, err := release.AssetForArch(i.Arch)
	if err != nil {
		return err
	}

	if err := pkgmgr.New(i.Run).EnsureInstalled("curl", "wget"); err != nil {
		if !errors.Is(err, pkgmgr.ErrNoManager) {
			return err
		}
		term.Warn("%v; continuing without it", err)
	}

	term.Info("Resolving latest release of %s...", i.Releases.Repo)
	tag, err := i.Releases.LatestTag()
	if err != nil {
		return err
	}
	term.Info("Latest version is %s, downloading...", tag)

	binary, cleanup, err := i.Releases.Fetch(tag, asset)
	if err != nil {
		return err
	}
	defer cleanup()

	if i.Service.IsActive() {
		term.Info("Stopping the running service for the update...")
		if err := i.Service.Stop(); err != nil {
			return err
		}
	}

	if err := i.installBinary(binary); err != nil {
		return err
	}
	if err := i.writeUnit(); err != nil {
		return err
	}
	if err := os.MkdirAll(i.Paths.WorkDir, 0755); err != nil {
		return fmt.Errorf("creating working directory: %w", err)
	}

	if setup.Needed(i.Paths.Database) {
		err := setup.Run(setup.Options{
			Binary:          i.Paths.Binary,
			WorkDir:         i.Paths.WorkDir,
			DefaultUsername: i.Settings.Username,
			DefaultPassword: i.Settings.Password,
			In:              i.In,
			Run:             i.Run,
		})
		if err != nil {
			return err
		}
	} else {
		term.Info("Existing configuration found, skipping first-run setup.")
	}

	if err := i.Service.Enable(); err != nil {
		return err
	}
	if err := i.Service.Start(); err != nil {
		return err
	}

	time.Sleep(i.Grace)
	if i.Service.IsActive() {
		term.Success("Phantom Tunnel %s is installed and running.", tag)
	} else {
		term.Error("Service is not active; inspect it with 'journalctl -u %s'.", i.Service.Unit)
	}
	return nil
}

func (i *Installer) installBinary(src string) error {
	if err := os.MkdirAll(filepath.Dir(i.Paths.Binary), 0755); err != nil {
		return fmt.Errorf("creating install directory: %w", err)
	}
	if err := moveFile(src, i.Paths.Binary); err != nil {
		return fmt.Errorf("installing binary: %w", err)
	}
	if err := os.Chmod(i.Paths.Binary, 0755); err != nil {
		return fmt.Errorf("marking binary executable: %w", err)
	}

	// Older releases shipped under the short name; keep it working.
	if err := os.Remove(i.Paths.Symlink); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing symlink: %w", err)
	}
	if err := os.Symlink(i.Paths.Binary, i.Paths.Symlink); err != nil {
		return fmt.Errorf("creating symlink: %w", err)
	}
	return nil
}

func (i *Installer) writeUnit() error {
	if err := os.MkdirAll(filepath.Dir(i.Paths.UnitFile), 0755); err != nil {
		return fmt.Errorf("creating unit directory: %w", err)
	}
	text := systemd.UnitText(i.Paths.Binary, i.Paths.WorkDir)
	if err := os.WriteFile(i.Paths.UnitFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing unit file: %w", err)
	}
	return i.Service.DaemonReload()
}

// moveFile renames src onto dst, falling back to a copy when the temp
// directory and the install path sit on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
