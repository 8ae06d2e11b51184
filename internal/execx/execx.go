// Package execx wraps external command execution behind a small interface
// so every systemctl, package-manager, and pkill invocation becomes a typed
// result the caller branches on, and tests can substitute a fake.
package execx

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Result carries the combined output and outcome of one external command.
type Result struct {
	Output []byte
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) Text() string {
	return strings.TrimSpace(string(r.Output))
}

type Runner interface {
	// Run executes the command and captures its combined output.
	Run(name string, args ...string) Result
	// RunIn is Run with dir as the command's working directory.
	RunIn(dir, name string, args ...string) Result
	// Stream executes the command attached to the caller's terminal,
	// cancelled through ctx.
	Stream(ctx context.Context, name string, args ...string) error
	// Exists reports whether the command resolves on PATH.
	Exists(name string) bool
}

// System is the real Runner.
type System struct{}

func (System) Run(name string, args ...string) Result {
	out, err := exec.Command(name, args...).CombinedOutput()
	return Result{Output: out, Err: err}
}

func (System) RunIn(dir, name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return Result{Output: out, Err: err}
}

func (System) Stream(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (System) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
