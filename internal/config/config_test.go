package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Repo != DefaultRepo {
		t.Errorf("Repo = %q, want %q", s.Repo, DefaultRepo)
	}
	if s.Service != DefaultService {
		t.Errorf("Service = %q, want %q", s.Service, DefaultService)
	}
	if s.Username != DefaultUsername || s.Password != DefaultPassword {
		t.Errorf("credentials = %q/%q, want %q/%q", s.Username, s.Password, DefaultUsername, DefaultPassword)
	}
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := "repo: example/fork\nservice: phantom-dev\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Repo != "example/fork" {
		t.Errorf("Repo = %q, want %q", s.Repo, "example/fork")
	}
	if s.Service != "phantom-dev" {
		t.Errorf("Service = %q, want %q", s.Service, "phantom-dev")
	}
	if s.Username != DefaultUsername {
		t.Errorf("Username = %q, want default %q", s.Username, DefaultUsername)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PHANTOMCTL_REPO", "someone/Phantom-Tunnel")

	s, err := load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Repo != "someone/Phantom-Tunnel" {
		t.Errorf("Repo = %q, want env override", s.Repo)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte("repo: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := load(file); err == nil {
		t.Fatal("expected error for malformed settings file")
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{"8080", false},
		{"1", false},
		{"65535", false},
		{"0", true},
		{"65536", true},
		{"", true},
		{"80a", true},
		{"-80", true},
		{"8 0", true},
		{"port", true},
	}

	for _, tt := range tests {
		err := ValidatePort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePort(%q) error = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

func TestSandboxPathsMirrorsLayout(t *testing.T) {
	root := t.TempDir()
	p := SandboxPaths(root)

	for name, path := range map[string]string{
		"Binary":   p.Binary,
		"Symlink":  p.Symlink,
		"UnitFile": p.UnitFile,
		"WorkDir":  p.WorkDir,
		"Database": p.Database,
	} {
		if !filepath.IsAbs(path) {
			t.Errorf("%s = %q, want absolute", name, path)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || filepath.IsAbs(rel) || rel == ".." || len(rel) > 1 && rel[:2] == ".." {
			t.Errorf("%s = %q escapes sandbox %q", name, path, root)
		}
	}

	if filepath.Dir(p.Database) != p.WorkDir {
		t.Errorf("Database %q not inside WorkDir %q", p.Database, p.WorkDir)
	}
	if len(p.LegacyFiles) == 0 || len(p.TempFiles) == 0 {
		t.Error("legacy and temp file lists must not be empty")
	}
}

func TestBinaryInstalled(t *testing.T) {
	p := SandboxPaths(t.TempDir())
	if p.BinaryInstalled() {
		t.Fatal("fresh sandbox should report not installed")
	}

	if err := os.MkdirAll(filepath.Dir(p.Binary), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p.Binary, []byte("#!"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !p.BinaryInstalled() {
		t.Fatal("binary present, expected installed")
	}
}
