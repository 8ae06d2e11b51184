package config

import (
	"os"
	"path/filepath"
)

// Paths collects every filesystem location an operation touches. Operations
// receive a Paths value instead of reading globals, so tests can point the
// whole layout into a sandbox.
type Paths struct {
	// Binary is the primary install path of the managed executable.
	Binary string
	// Symlink is the compatibility name pointing at Binary.
	Symlink string
	// UnitFile is the systemd unit written on every install.
	UnitFile string
	// WorkDir holds the managed binary's own state.
	WorkDir string
	// Database is the configuration database inside WorkDir; its absence
	// means first-run setup has not happened yet.
	Database string

	// LegacyDir and LegacyFiles describe the pre-2.x layout, kept only so
	// uninstall can clean old installations.
	LegacyDir   string
	LegacyFiles []string

	// TempFiles are the fixed scratch paths the managed binary writes.
	TempFiles []string
}

func DefaultPaths() Paths {
	workDir := "/etc/phantom-tunnel"
	return Paths{
		Binary:    "/usr/local/bin/phantom-tunnel",
		Symlink:   "/usr/local/bin/phantom",
		UnitFile:  "/etc/systemd/system/phantom.service",
		WorkDir:   workDir,
		Database:  filepath.Join(workDir, "phantom.db"),
		LegacyDir: "/root",
		LegacyFiles: []string{
			"phantom.db",
			"server.crt",
			"server.key",
			"phantom.log",
		},
		TempFiles: []string{
			"/tmp/phantom.pid",
			"/tmp/phantom-tunnel.log",
			"/tmp/phantom_success.signal",
		},
	}
}

// SandboxPaths mirrors the default layout under root, for tests.
func SandboxPaths(root string) Paths {
	workDir := filepath.Join(root, "etc", "phantom-tunnel")
	return Paths{
		Binary:    filepath.Join(root, "usr", "local", "bin", "phantom-tunnel"),
		Symlink:   filepath.Join(root, "usr", "local", "bin", "phantom"),
		UnitFile:  filepath.Join(root, "etc", "systemd", "system", "phantom.service"),
		WorkDir:   workDir,
		Database:  filepath.Join(workDir, "phantom.db"),
		LegacyDir: filepath.Join(root, "root"),
		LegacyFiles: []string{
			"phantom.db",
			"server.crt",
			"server.key",
			"phantom.log",
		},
		TempFiles: []string{
			filepath.Join(root, "tmp", "phantom.pid"),
			filepath.Join(root, "tmp", "phantom-tunnel.log"),
			filepath.Join(root, "tmp", "phantom_success.signal"),
		},
	}
}

// BinaryInstalled reports whether the primary executable is present.
func (p Paths) BinaryInstalled() bool {
	info, err := os.Stat(p.Binary)
	return err == nil && !info.IsDir()
}
