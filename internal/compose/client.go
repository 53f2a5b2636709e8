package compose

import (
	"context"
	"path/filepath"
	"strings"

	"simctl/internal/utils"
)

// DirSource supplies the compose project directory, either as a fixed path
// or computed at call time (e.g. the current working directory).
type DirSource struct {
	path string
	fn   func() (string, error)
}

// StaticDir returns a DirSource that always resolves to path.
func StaticDir(path string) DirSource {
	return DirSource{path: path}
}

// ComputedDir returns a DirSource evaluated once per call.
func ComputedDir(fn func() (string, error)) DirSource {
	return DirSource{fn: fn}
}

// Resolve returns the absolute project directory.
func (d DirSource) Resolve() (string, error) {
	path := d.path
	if d.fn != nil {
		p, err := d.fn()
		if err != nil {
			return "", err
		}
		path = p
	}
	return filepath.Abs(path)
}

// FlagSource supplies the project-scoping flags prepended to every
// orchestrator invocation, fixed or computed per call.
type FlagSource struct {
	flags []string
	fn    func() []string
}

// StaticFlags returns a FlagSource with a fixed flag list.
func StaticFlags(flags ...string) FlagSource {
	return FlagSource{flags: flags}
}

// ComputedFlags returns a FlagSource evaluated once per call.
func ComputedFlags(fn func() []string) FlagSource {
	return FlagSource{fn: fn}
}

// Resolve returns the current flag list.
func (f FlagSource) Resolve() []string {
	if f.fn != nil {
		return f.fn()
	}
	return f.flags
}

// ProjectFlags builds the default project-scoping flag pair for name.
func ProjectFlags(name string) []string {
	return []string{"-p", strings.ToLower(name)}
}

// Client invokes the compose orchestrator for one project. Every invocation
// runs in the resolved project directory with the resolved extra flags
// prepended, so subcommands only supply their own argument vector.
type Client struct {
	binary string
	dir    DirSource
	flags  FlagSource
	runner utils.Runner
}

// NewClient creates a Client for the given orchestrator binary.
func NewClient(binary string, dir DirSource, flags FlagSource, runner utils.Runner) *Client {
	return &Client{binary: binary, dir: dir, flags: flags, runner: runner}
}

// Run forwards args to the orchestrator, streaming its output to the
// caller's terminal. It blocks for the orchestrator's full runtime.
func (c *Client) Run(ctx context.Context, args ...string) error {
	dir, err := c.dir.Resolve()
	if err != nil {
		return err
	}
	return c.runner.Run(ctx, dir, c.binary, c.argv(args)...)
}

// Capture forwards args to the orchestrator and returns its stdout.
func (c *Client) Capture(ctx context.Context, args ...string) (string, error) {
	dir, err := c.dir.Resolve()
	if err != nil {
		return "", err
	}
	return c.runner.Capture(ctx, dir, c.binary, c.argv(args)...)
}

func (c *Client) argv(args []string) []string {
	flags := c.flags.Resolve()
	argv := make([]string, 0, len(flags)+len(args))
	argv = append(argv, flags...)
	return append(argv, args...)
}
