// Package commands implements the CLI commands for pkgseg.
package commands

import (
	"context"
	"io"
	"path/filepath"

	"github.com/pkgseg/pkgseg/internal/adapters/config"
	"github.com/pkgseg/pkgseg/internal/app"
	"github.com/pkgseg/pkgseg/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for pkgseg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, names []string, opts app.Options) error
	Watch(ctx context.Context, names []string, opts app.Options) error
	List(w io.Writer, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "pkgseg",
		Short: "Derive minimal package environments from a resolved manifest",
		Long: "pkgseg prunes a fully resolved Project.toml/Manifest.toml pair down to the\n" +
			"transitive closure of a requested set of packages, producing self-consistent\n" +
			"segment environments without re-running the resolver.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Environment directory containing Project.toml and Manifest.toml")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the segments config (default <dir>/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newListCmd())
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

// SetLoggerHook installs a PersistentPreRun that applies the logging
// flags before any command runs.
func (c *CLI) SetLoggerHook(fn func(json, verbose bool)) {
	c.rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		json, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		fn(json, verbose)
	}
}

// options assembles app.Options from the persistent flags.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = filepath.Join(dir, config.DefaultFileName)
	}
	return app.Options{Dir: dir, ConfigPath: configPath}
}
