package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"

	"github.com/spf13/viper"
)

const (
	DefaultRepo     = "Ramin-Setoodehnia/Phantom-Tunnel"
	DefaultService  = "phantom"
	DefaultUsername = "admin"
	DefaultPassword = "admin"

	settingsFile = "/etc/phantomctl/config.yaml"
	envPrefix    = "PHANTOMCTL"
)

var numericPort = regexp.MustCompile(`^[0-9]+$`)

// Settings are the installer's own knobs, with documented defaults.
// An optional /etc/phantomctl/config.yaml and PHANTOMCTL_* environment
// variables override them.
type Settings struct {
	// Repo is the GitHub repository releases are fetched from.
	Repo string
	// Service is the systemd unit name.
	Service string
	// Username and Password are the defaults offered during first-run setup.
	// The password never appears in any output.
	Username string
	Password string
}

func Load() (*Settings, error) {
	return load(settingsFile)
}

func load(file string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("repo", DefaultRepo)
	v.SetDefault("service", DefaultService)
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("password", DefaultPassword)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		// The settings file is optional; only a malformed one is an error.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	}

	return &Settings{
		Repo:     v.GetString("repo"),
		Service:  v.GetString("service"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
	}, nil
}

// ValidatePort enforces the digits-only rule first-run setup requires.
func ValidatePort(port string) error {
	if !numericPort.MatchString(port) {
		return fmt.Errorf("invalid port %q: must be numeric", port)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q: must be between 1 and 65535", port)
	}
	return nil
}
