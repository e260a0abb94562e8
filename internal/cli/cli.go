// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mglenn/gitstamp/internal/adapters/execgit"
	"github.com/mglenn/gitstamp/internal/adapters/osfs"
	"github.com/mglenn/gitstamp/internal/config"
	"github.com/mglenn/gitstamp/internal/ports"
	"github.com/mglenn/gitstamp/internal/report"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output: the single result line only
	Err     io.Writer // Standard error: usage and diagnostics
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	VCS       ports.VersionControlClient
	FS        ports.FileSystem
	LookPath  func(file string) (string, error)

	// Color functions (can be disabled for testing)
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		red:     color.New(color.FgRed, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) {},
		red:     noColor,
		yellow:  noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }

// Helper methods to get the service or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) vcs(cfg *config.Config) ports.VersionControlClient {
	if c.VCS != nil {
		return c.VCS
	}
	opts := []execgit.Option{execgit.WithGitPath(cfg.GitBin)}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, execgit.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	return execgit.New(opts...)
}

func (c *CLI) fs() ports.FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return osfs.New()
}

func (c *CLI) lookPath() func(string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath
	}
	return exec.LookPath
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	var files []string
	for _, arg := range c.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			c.printUsage()
			return
		case arg == "-version" || arg == "--version":
			fmt.Fprintf(c.Out, "gitstamp version %s\n", c.Version)
			return
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(c.Err, "unknown flag: %s\n", arg)
			c.printUsage()
			c.Exit(1)
			return
		default:
			files = append(files, arg)
		}
	}

	if len(files) != 1 {
		c.printUsage()
		c.Exit(1)
		return
	}

	c.Report(files[0])
}

// printUsage prints the usage line to standard error.
func (c *CLI) printUsage() {
	fmt.Fprintln(c.Err, "usage: gitstamp <file>")
}

// Report runs the query pipeline for path and prints the result line.
//
// Precondition failures (missing client, bad directory, missing or unreadable
// file) are fatal: a best-effort 'status:UNKNOWN' line, a FATAL diagnostic,
// exit 1. Failures of the individual queries degrade instead: whatever was
// already learned still prints and the exit code stays 0, so a build that
// embeds the line never breaks just because version metadata is unavailable.
func (c *CLI) Report(path string) {
	cfg := c.loadConfig()

	if _, err := c.lookPath()(cfg.GitBin); err != nil {
		c.fatal("version-control client %q not found in PATH", cfg.GitBin)
		return
	}

	dir := filepath.Dir(path)
	file := filepath.Base(path)

	fs := c.fs()
	info, err := fs.Stat(dir)
	if err != nil {
		c.fatal("directory %s does not exist", dir)
		return
	}
	if !info.IsDir() {
		c.fatal("%s is not a directory", dir)
		return
	}

	target := filepath.Join(dir, file)
	if _, err := fs.Stat(target); err != nil {
		c.fatal("file %s does not exist", target)
		return
	}
	f, err := fs.Open(target)
	if err != nil {
		c.fatal("file %s is not readable: %v", target, err)
		return
	}
	f.Close()

	vcs := c.vcs(cfg)
	var res report.Result

	blob, err := vcs.HashObject(dir, file)
	if err != nil {
		c.degrade(res, "could not hash %s: %v", target, err)
		return
	}

	rev, err := vcs.CurrentRevision(dir)
	if err != nil {
		// Outside a repository the content hash is still meaningful and
		// stays in the line. Any other revision failure means the client
		// output is suspect, so nothing of it is kept.
		if errors.Is(err, ports.ErrNoRepository) {
			res.Blob = blob
		}
		c.degrade(res, "could not resolve current revision: %v", err)
		return
	}

	code, err := vcs.StatusOf(dir, file)
	if err != nil {
		res.Blob = blob
		c.degrade(res, "could not query status of %s: %v", target, err)
		return
	}

	res.Revision = rev
	if cat := report.CategoryOf(code); cat != report.CategoryClean {
		res.Category = cat
		res.Blob = blob
	}
	fmt.Fprintln(c.Out, res.Line())
}

// loadConfig returns the effective config, falling back to defaults with a
// warning when the optional file cannot be read.
func (c *CLI) loadConfig() *config.Config {
	cfg, err := c.configSvc().Load()
	if err != nil {
		c.warn("could not load config: %v", err)
		return config.DefaultConfig()
	}
	if cfg.NoColor {
		plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
		c.red, c.yellow = plain, plain
	}
	return cfg
}

// fatal prints the best-effort result line, a FATAL diagnostic, and exits 1.
func (c *CLI) fatal(format string, args ...interface{}) {
	fmt.Fprintln(c.Out, report.Result{}.Line())
	fmt.Fprintf(c.Err, "%s %s\n", c.red("FATAL:"), fmt.Sprintf(format, args...))
	c.Exit(1)
}

// degrade prints whatever the queries produced, a WARNING diagnostic, and
// exits 0.
func (c *CLI) degrade(res report.Result, format string, args ...interface{}) {
	fmt.Fprintln(c.Out, res.Line())
	c.warn(format, args...)
	c.Exit(0)
}

// warn prints a WARNING diagnostic to standard error.
func (c *CLI) warn(format string, args ...interface{}) {
	fmt.Fprintf(c.Err, "%s %s\n", c.yellow("WARNING:"), fmt.Sprintf(format, args...))
}
