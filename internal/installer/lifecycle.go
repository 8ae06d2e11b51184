package installer

import (
	"context"
	"errors"
)

// ErrNotInstalled guards the lifecycle operations: without the primary
// executable no service-manager command is issued at all.
var ErrNotInstalled = errors.New("phantom tunnel is not installed; run install first")

func (i *Installer) requireInstalled() error {
	if !i.Paths.BinaryInstalled() {
		return ErrNotInstalled
	}
	return nil
}

func (i *Installer) Restart() error {
	if err := i.requireInstalled(); err != nil {
		return err
	}
	return i.Service.Restart()
}

func (i *Installer) Stop() error {
	if err := i.requireInstalled(); err != nil {
		return err
	}
	return i.Service.Stop()
}

func (i *Installer) Status(ctx context.Context) error {
	if err := i.requireInstalled(); err != nil {
		return err
	}
	i.Service.Status(ctx)
	return nil
}

// Logs follows the service journal until ctx is cancelled.
func (i *Installer) Logs(ctx context.Context) error {
	if err := i.requireInstalled(); err != nil {
		return err
	}
	return i.Service.Logs(ctx)
}
