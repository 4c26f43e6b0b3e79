// Package commands implements the CLI commands for symcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/symcache/internal/app"
	"go.trai.ch/symcache/internal/build"
	"go.trai.ch/symcache/internal/core/domain"
)

// CLI represents the command line interface for symcache.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
//
//go:generate mockgen -source=root.go -destination=mocks/mock_application.go -package=mocks
type Application interface {
	Inspect(ctx context.Context, opts app.InspectOptions) error
	Fingerprint(ctx context.Context, opts app.FingerprintOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	SetJSONLog(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "symcache",
		Short:         "Inspect and maintain symbol lookup caches",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to "+domain.ConfigFileName+" (default: search upward)")
	flags.StringP("data-dir", "d", "", "Base directory of the cache store")
	flags.StringP("binary", "b", "", "Source binary whose identity is fingerprinted")
	flags.String("cache-name", "", "Store namespace (default \""+domain.DefaultCacheName+"\")")
	flags.Int("schema-version", 0, "Cache schema version (default 1)")
	flags.Bool("json-log", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		if jsonLog {
			c.app.SetJSONLog(true)
		}
	}

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// settings reads the persistent configuration flags.
func settings(cmd *cobra.Command) app.Settings {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	dataDir, _ := flags.GetString("data-dir")
	binary, _ := flags.GetString("binary")
	cacheName, _ := flags.GetString("cache-name")
	schemaVersion, _ := flags.GetInt("schema-version")

	return app.Settings{
		ConfigPath: configPath,
		Overrides: domain.Options{
			CacheName:        cacheName,
			SchemaVersion:    schemaVersion,
			SourceBinaryPath: binary,
			DataDirectory:    dataDir,
		},
	}
}
