package cmd

import (
	"bufio"
	"context"
	"os"
	"os/signal"

	"github.com/Ramin-Setoodehnia/phantomctl/internal/config"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/execx"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/installer"
	"github.com/Ramin-Setoodehnia/phantomctl/internal/term"
)

var stdin *bufio.Reader

// stdinReader is shared so the menu and a prompt inside an operation read
// from the same buffer.
func stdinReader() *bufio.Reader {
	if stdin == nil {
		stdin = bufio.NewReader(os.Stdin)
	}
	return stdin
}

func newInstaller(in *bufio.Reader) (*installer.Installer, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return installer.New(settings, config.DefaultPaths(), execx.System{}, in), nil
}

func runInstall(in *bufio.Reader) error {
	inst, err := newInstaller(in)
	if err != nil {
		return err
	}
	return inst.Install()
}

func runUninstall(in *bufio.Reader) error {
	ok, err := term.Confirm(in, "This removes the binary, the service, and all tunnel data. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		term.Info("Uninstall cancelled, nothing changed.")
		return nil
	}

	inst, err := newInstaller(in)
	if err != nil {
		return err
	}
	if err := inst.Uninstall(); err != nil {
		return err
	}
	term.Success("Phantom Tunnel has been removed.")
	return nil
}

func runRestart(in *bufio.Reader) error {
	inst, err := newInstaller(in)
	if err != nil {
		return err
	}
	if err := inst.Restart(); err != nil {
		return err
	}
	term.Success("Service restarted.")
	return nil
}

func runStop(in *bufio.Reader) error {
	inst, err := newInstaller(in)
	if err != nil {
		return err
	}
	if err := inst.Stop(); err != nil {
		return err
	}
	term.Success("Service stopped.")
	return nil
}

func runStatus(in *bufio.Reader) error {
	inst, err := newInstaller(in)
	if err != nil {
		return err
	}
	return inst.Status(context.Background())
}

func runLogs(in *bufio.Reader) error {
	inst, err := newInstaller(in)
	if err != nil {
		return err
	}

	// Ctrl-C stops the stream, not the tool.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return inst.Logs(ctx)
}
