// Package setup performs the managed binary's one-time first-run
// configuration, gated on the absence of its database.
package setup

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/config"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
)

// Needed reports whether first-run setup has to happen. The configuration
// database is the sentinel: once the binary has been set up it exists.
func Needed(database string) bool {
	_, err := os.Stat(database)
	return os.IsNotExist(err)
}

type Options struct {
	Binary string
	// WorkDir is where the binary writes its database. The setup invocation
	// must run there, matching the service's WorkingDirectory, or the
	// sentinel ends up somewhere the service never looks.
	WorkDir         string
	DefaultUsername string
	DefaultPassword string
	In              *bufio.Reader
	Run             execx.Runner
}

// Run collects the panel port and admin credentials, then invokes the
// installed binary once with the three setup flags, from WorkDir. An
// invalid port aborts before any invocation.
func Run(opts Options) error {
	term.Info("First-run setup: the panel needs a port and admin credentials.")

	port, err := term.Prompt(opts.In, "Panel port", "8080")
	if err != nil {
		return fmt.Errorf("reading port: %w", err)
	}
	if err := config.ValidatePort(port); err != nil {
		return err
	}

	username, err := term.Prompt(opts.In, "Admin username", opts.DefaultUsername)
	if err != nil {
		return fmt.Errorf("reading username: %w", err)
	}

	password, err := term.PromptSecret(opts.In, "Admin password", opts.DefaultPassword)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	res := opts.Run.RunIn(opts.WorkDir, opts.Binary, "--port", port, "--username", username, "--password", password)
	if !res.OK() {
		return fmt.Errorf("running setup: %w: %s", res.Err, res.Text())
	}
	term.Success("Initial configuration written.")
	return nil
}
