package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doctidy"
	"github.com/fwojciec/doctidy/fs"
	"github.com/fwojciec/doctidy/gohtml"
	"github.com/fwojciec/doctidy/goquery"
	doctidyslog "github.com/fwojciec/doctidy/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cleaner overrides the default directory cleaner. Used by tests.
	Cleaner doctidy.DirectoryCleaner
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `arg:"" optional:"" default:"EDA_EX_DOC" help:"Directory containing exported HTML files (default: EDA_EX_DOC)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doctidy"),
		kong.Description("Sanitize exported documentation HTML files in place"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Resolve the target directory to an absolute path at startup.
	root, err := filepath.Abs(cli.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", cli.Dir, err)
	}

	cleaner := m.Cleaner
	if cleaner == nil {
		var sanitizer doctidy.Sanitizer = goquery.NewSanitizer(gohtml.NewFormatter())
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
			sanitizer = doctidyslog.NewSanitizer(sanitizer, logger)
		}
		cleaner = fs.NewWalker(sanitizer)
	}

	progress := func(p doctidy.CleanProgress) {
		fmt.Fprintf(stdout, "[%d/%d] %s\n", p.Completed, p.Total, p.Path)
		if p.Err == nil {
			return
		}
		if doctidy.ErrorCode(p.Err) == doctidy.ENOTFOUND {
			fmt.Fprintf(stderr, "warning: %s: %s\n", p.Path, doctidy.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(stderr, "error: %s: %v\n", p.Path, p.Err)
	}

	result, err := cleaner.CleanAll(ctx, root, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Cleaned %d of %d files (%d unchanged, %d skipped, %d failed)\n",
		result.Cleaned, result.Total(), result.Unchanged, result.Skipped, result.Failed)
	return nil
}
