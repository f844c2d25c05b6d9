// Package commands implements the CLI commands for metapin.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/metapin/internal/adapters/apt"
	"go.trai.ch/metapin/internal/app"
	"go.trai.ch/metapin/internal/build"
)

// CLI represents the command line interface for metapin.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "metapin [architecture]",
		Short: "Print a meta-package paragraph with pinned dependency versions",
		Long: "metapin reads the Debian control file, takes the Depends of the source\n" +
			"meta-package, pins every entry to the candidate version known to the package\n" +
			"cache and prints the result as a new paragraph for the target meta-package.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "Path to a metapin.yaml or metapin.toml file")
	flags.String("control", "", "Path to the Debian control file (default \"../debian/control\")")
	flags.String("source", "", "Package whose dependencies are pinned (default \"consolinno-hems-latest\")")
	flags.String("target", "", "Name of the generated package (default \"consolinno-hems\")")
	flags.StringP("policy", "p", "", "Pinning policy: exact or minimum (default \"exact\")")
	flags.StringP("resolver", "r", "", "Version source: apt-cache, index or snapshot (default \"apt-cache\")")
	flags.String("lists-dir", "", "Apt lists directory read by the index resolver (default \"/var/lib/apt/lists\")")
	flags.String("snapshot", "", "Pin snapshot replayed by the snapshot resolver")
	flags.String("write-snapshot", "", "Write the resolved pins to this file")
	flags.Bool("host-arch", false, "Use the architecture of this machine when none is given")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}

	opts := app.RunOptions{
		ConfigPath:    str("config"),
		ControlPath:   str("control"),
		SourcePackage: str("source"),
		TargetPackage: str("target"),
		Policy:        str("policy"),
		Resolver:      str("resolver"),
		ListsDir:      str("lists-dir"),
		SnapshotPath:  str("snapshot"),
		WriteSnapshot: str("write-snapshot"),
	}

	switch hostArch, _ := flags.GetBool("host-arch"); {
	case len(args) == 1:
		opts.Architecture = args[0]
	case hostArch:
		opts.Architecture = apt.HostArchitecture()
	}

	return c.app.Run(cmd.Context(), opts)
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
