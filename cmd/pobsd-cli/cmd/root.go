package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pobsd/internal/adapters/filesystem"
	"pobsd/internal/application"
	"pobsd/internal/application/commands"
	"pobsd/internal/catalog"
	"pobsd/internal/config"
	"pobsd/internal/ctxlog"
	"pobsd/internal/parser"
	"pobsd/internal/ports"
)

var (
	databasePath string
	strict       bool
	logLevel     string

	source ports.DatabaseSource
	mode   parser.Mode
)

var rootCmd = &cobra.Command{
	Use:   "pobsd-cli",
	Short: "CLI for the PlayOnBSD games database",
	Long: `pobsd-cli reads the PlayOnBSD database of commercial games running on
OpenBSD and answers questions about it.

It provides commands to check and reformat the database, and to show,
find, list, filter and search games.

Settings come from POBSD_DATABASE, POBSD_MODE and POBSD_LOG_LEVEL, also
read from a .env file. Flags override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		config.LoadEnvFile()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("database") {
			databasePath = cfg.DatabasePath
		}
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			if level, err = config.ParseLogLevel(logLevel); err != nil {
				return err
			}
		}
		mode = parser.Strict
		if !strict {
			if mode, err = application.ValidateMode("mode", cfg.Mode); err != nil {
				return err
			}
		}

		logger := ctxlog.New(os.Stderr, level)
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		source = filesystem.NewSource(databasePath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", config.DefaultDatabasePath, "path to the games database")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "stop at the first malformed line")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

// GetSource returns the initialized database source
func GetSource() ports.DatabaseSource {
	return source
}

// GetMode returns the parsing mode selected by flags and configuration
func GetMode() parser.Mode {
	return mode
}

// loadCatalog reads and indexes the database for the query commands
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	loaded, err := commands.NewLoadCommand(GetSource(), GetMode()).Execute(cmd.Context())
	if err != nil {
		// A read that failed part way still answers from the records before it
		var loadErr *application.LoadError
		if loaded == nil || !errors.As(err, &loadErr) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return loaded.Catalog, nil
}
