package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gochart/exportgen/internal/pkg/cli/options"
	"github.com/gochart/exportgen/internal/pkg/env"
	"github.com/gochart/exportgen/internal/pkg/filesystem"
	"github.com/gochart/exportgen/internal/pkg/filesystem/aferofs"
	"github.com/gochart/exportgen/internal/pkg/log"
	"github.com/gochart/exportgen/internal/pkg/version"
)

const description = `
Export list updater

Regenerate the public export list of the library
in the working directory, during release preparation.

The "update" sub-command rewrites the entry file in place,
the "check" sub-command verifies it without writing, for CI.
`

// FsFactory creates the filesystem abstraction for the working directory.
type FsFactory func(logger *zap.SugaredLogger, workingDir string) (filesystem.Fs, error)

// DefaultFsFactory creates a filesystem rooted at the working directory.
func DefaultFsFactory(logger *zap.SugaredLogger, workingDir string) (filesystem.Fs, error) {
	var err error
	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf(`cannot get working dir from OS: %w`, err)
		}
	}

	workingDir, err = filepath.Abs(workingDir)
	if err != nil {
		return nil, err
	}

	return aferofs.NewLocalFs(logger, workingDir, "")
}

type rootCommand struct {
	cmd         *cobra.Command
	fsFactory   FsFactory
	fs          filesystem.Fs       // filesystem abstraction
	envs        *env.Map            // ENVs from OS
	options     *options.Options    // parsed flags and env variables
	ctx         context.Context     // context for the whole run
	start       time.Time           // cmd start time
	initialized bool                // init method was called
	logFile     *os.File            // log file instance
	logger      *zap.SugaredLogger  // log to console and logFile
	stdout      io.Writer
	stderr      io.Writer
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, envs *env.Map, fsFactory FsFactory) *rootCommand {
	root := &rootCommand{
		fsFactory: fsFactory,
		envs:      envs,
		ctx:       context.Background(),
		start:     time.Now(),
		stdout:    stdout,
		stderr:    stderr,
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:          path.Base(os.Args[0]), // name of the binary
		Version:      version.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	flags := root.cmd.PersistentFlags()
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.BoolP("verbose", "v", false, "print details")

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		updateCommand(root),
		checkCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() int {
	defer root.tearDown()

	if err := root.cmd.Execute(); err != nil {
		if root.logger != nil {
			root.logger.Errorf(`Error: %s`, err.Error())
		} else {
			fmt.Fprintf(root.stderr, "Error: %s\n", err.Error())
		}
		return 1
	}
	return 0
}

// init sets up the filesystem, options and logger, when the flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return nil
	}

	// Create filesystem abstraction for the working dir
	workingDir, _ := cmd.Flags().GetString("working-dir")
	root.fs, err = root.fsFactory(log.NewNopLogger(), workingDir)
	if err != nil {
		return err
	}

	// Load values from flags and envs
	root.options = options.NewOptions()
	if err = root.options.Load(log.NewNopLogger(), root.envs, root.fs, cmd.Flags()); err != nil {
		return err
	}

	// Open log file
	if logFilePath := root.options.LogFilePath(); logFilePath != "" {
		root.logFile, err = os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf(`cannot open log file "%s": %w`, logFilePath, err)
		}
	}

	// Create logger
	root.logger = log.NewLogger(root.stdout, root.stderr, root.logFile, root.options.Verbose())
	root.fs.SetLogger(root.logger)
	root.logger.Debug(version.Version())
	root.logger.Debug(root.options.Dump())
	root.logger.Debugf(`Working dir "%s"`, root.fs.BasePath())

	root.initialized = true
	return nil
}

func (root *rootCommand) tearDown() {
	if root.logger != nil {
		root.logger.Debugf(`Finished, elapsed time %s`, time.Since(root.start))
		_ = root.logger.Sync()
	}
	if root.logFile != nil {
		_ = root.logFile.Close()
	}
}
