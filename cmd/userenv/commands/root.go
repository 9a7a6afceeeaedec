// Package commands implements the userenv command line.
package commands

import (
	"github.com/arthur-debert/userenv/internal/version"
	"github.com/arthur-debert/userenv/pkg/config"
	"github.com/arthur-debert/userenv/pkg/envvar"
	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/logging"
	"github.com/arthur-debert/userenv/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share once the root has parsed its flags.
type app struct {
	client   *envvar.Client
	renderer *output.Renderer
}

type rootOptions struct {
	client *envvar.Client
}

// RootOption customizes NewRootCmd.
type RootOption func(*rootOptions)

// WithClient makes every command use c instead of the client built from
// configuration.
func WithClient(c *envvar.Client) RootOption {
	return func(o *rootOptions) {
		o.client = c
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...RootOption) *cobra.Command {
	initTemplateFormatting()

	var ro rootOptions
	for _, opt := range opts {
		opt(&ro)
	}

	var (
		verbosity    int
		configFile   string
		backend      string
		noNotify     bool
		outputFormat string
		a            app
	)

	rootCmd := &cobra.Command{
		Use:     "userenv",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgVariablesExample,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --output")
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Overrides:  overrides(cmd, backend, noNotify),
			})
			if err != nil {
				return err
			}

			logging.SetupLogger(verbosity, cfg.Log.File)
			logging.LogCommand(cmd.CommandPath(), args)

			a.renderer = output.NewRenderer(format, cmd.OutOrStdout())
			if ro.client != nil {
				a.client = ro.client
				return nil
			}

			a.client, err = envvar.FromConfig(cfg, envvar.WithLogger(logging.GetLogger("envvar")))
			if err != nil {
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrOpenStore)
			}
			log.Debug().
				Str("backend", string(cfg.StoreKind().Resolve())).
				Bool("notify", cfg.Notify.Enabled).
				Msg("client ready")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&backend, "backend", "", MsgFlagBackend)
	flags.BoolVar(&noNotify, "no-notify", false, MsgFlagNoNotify)
	flags.StringVarP(&outputFormat, "output", "o", "auto", MsgFlagOutput)
	_ = rootCmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(
		[]string{"auto", "registry", "file", "memory"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "variables", Title: MsgGroupVariables})
	rootCmd.AddGroup(&cobra.Group{ID: "lists", Title: MsgGroupLists})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSetCmd(&a))
	rootCmd.AddCommand(newGetCmd(&a))
	rootCmd.AddCommand(newRemoveCmd(&a))
	rootCmd.AddCommand(newExistsCmd(&a))
	rootCmd.AddCommand(newAppendCmd(&a))
	rootCmd.AddCommand(newPrependCmd(&a))
	rootCmd.AddCommand(newRemoveFromListCmd(&a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// overrides turns explicitly set flags into config keys.
func overrides(cmd *cobra.Command, backend string, noNotify bool) map[string]interface{} {
	o := map[string]interface{}{}
	if cmd.Flags().Changed("backend") {
		o["backend"] = backend
	}
	if cmd.Flags().Changed("no-notify") {
		o["notify.enabled"] = !noNotify
	}
	return o
}

// PrintError writes err to the command's error stream in the format
// selected by --output.
func PrintError(cmd *cobra.Command, err error) {
	format, perr := output.ParseFormat(cmd.PersistentFlags().Lookup("output").Value.String())
	if perr != nil {
		format = output.FormatText
	}
	_ = output.NewRenderer(format, cmd.ErrOrStderr()).RenderError(err)
}
