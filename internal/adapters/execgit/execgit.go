// Package execgit provides a version-control client adapter using exec.Command.
package execgit

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mglenn/gitstamp/internal/ports"
)

// noRepositoryExit is the exit code git reserves for fatal errors, which is
// what a history query returns when run outside any repository.
const noRepositoryExit = 128

// ExecGitClient implements ports.VersionControlClient using exec.Command.
// Each query runs with the target directory as the subprocess working
// directory; the process's own working directory never changes.
type ExecGitClient struct {
	gitPath string
	timeout time.Duration
}

// Option is a functional option for configuring ExecGitClient.
type Option func(*ExecGitClient)

// WithGitPath sets a custom name or path for the git binary.
func WithGitPath(path string) Option {
	return func(c *ExecGitClient) {
		if path != "" {
			c.gitPath = path
		}
	}
}

// WithTimeout bounds each query subprocess. Zero or negative means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *ExecGitClient) {
		c.timeout = d
	}
}

// New creates a new ExecGitClient adapter.
func New(opts ...Option) *ExecGitClient {
	c := &ExecGitClient{gitPath: "git"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HashObject returns the blob hash of the file's current bytes. It works for
// tracked and untracked files alike, inside a repository or not.
func (g *ExecGitClient) HashObject(dir, file string) (string, error) {
	return g.run(dir, "hash-object", "--", file)
}

// CurrentRevision returns the full hash of the checked-out revision. Exit
// code 128 from the query means there is no repository (or no commit yet)
// and is reported as ports.ErrNoRepository.
func (g *ExecGitClient) CurrentRevision(dir string) (string, error) {
	out, err := g.run(dir, "rev-parse", "HEAD")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == noRepositoryExit {
			return "", fmt.Errorf("%w: %v", ports.ErrNoRepository, err)
		}
		return "", err
	}
	return out, nil
}

// StatusOf returns the porcelain status code for the file: the first
// whitespace-delimited token of its status line, or the empty string when
// the file matches its committed content exactly.
func (g *ExecGitClient) StatusOf(dir, file string) (string, error) {
	out, err := g.run(dir, "status", "--porcelain", "--", file)
	if err != nil {
		return "", err
	}
	return statusCode(out), nil
}

// statusCode extracts the code token from porcelain output. No output means
// no status entry, which is the clean case.
func statusCode(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// run executes one git query with dir as the working directory and returns
// trimmed stdout. A failure message carries git's stderr, and the
// *exec.ExitError stays in the chain so callers can inspect the exit code.
func (g *ExecGitClient) run(dir string, args ...string) (string, error) {
	ctx := context.Background()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, g.gitPath, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return "", fmt.Errorf("git %s: %s: %w", args[0], msg, err)
			}
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Compile-time check that ExecGitClient implements ports.VersionControlClient.
var _ ports.VersionControlClient = (*ExecGitClient)(nil)
