package terminal

import (
	"io"
	"net/http"
	"os"

	"github.com/de-tools/field-atlas/pkg/runtime/terminal/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	flags   commands.GlobalFlags
	options Options
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger *zerolog.Logger
	// Args overrides os.Args[1:] when not nil.
	Args []string
	// HTTPClient is used for every server call when set.
	HTTPClient *http.Client
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		logger := zerolog.New(io.Discard)
		opts.Logger = &logger
	}

	cli := &CLI{options: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	inspect := commands.NewInspectCmd(&cli.flags, cli.options.HTTPClient)

	cmd := &cobra.Command{
		Use:           "field-atlas",
		Short:         "Explore the fields of published datasources",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(cli.options.Logger.WithContext(cmd.Context()))
		},
		RunE: inspect.RunE,
	}

	cli.flags.Register(cmd.PersistentFlags())

	cmd.AddCommand(inspect)
	cmd.AddCommand(commands.NewProfilesCmd(&cli.flags))

	cmd.SetIn(cli.options.Input)
	cmd.SetOut(cli.options.Output)
	if cli.options.Args != nil {
		cmd.SetArgs(cli.options.Args)
	}

	return cmd
}
