package slideshow

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/slideshow/pkg/config"
	"github.com/arthur-debert/slideshow/pkg/errors"
	"github.com/arthur-debert/slideshow/pkg/filesystem"
	"github.com/arthur-debert/slideshow/pkg/logging"
	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/arthur-debert/slideshow/pkg/paths"
	"github.com/arthur-debert/slideshow/pkg/runner"
	"github.com/arthur-debert/slideshow/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var opts options.Options

	builtin := config.Default(paths.NewFromLayout("", "", ""))

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: builtin.Banner(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.Verbose)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableAutoGenTag:     true,
		DisableFlagsInUseLine: true,
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.OutputPath, "output", "o", "", fmt.Sprintf(MsgFlagOutput, builtin.Defaults.Output))
	flags.StringVarP(&opts.Manifest, "template", "t", "", fmt.Sprintf(MsgFlagTemplate, builtin.Defaults.Manifest))
	addHeaderLevelFlags(flags, &opts.HeaderLevel)
	flags.StringVarP(&opts.FetchURI, "fetch", "f", "", MsgFlagFetch)
	flags.BoolVarP(&opts.List, "list", "l", false, MsgFlagList)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", fmt.Sprintf(MsgFlagConfig, "$"+paths.EnvConfigDir+" or ~/.config/"+paths.AppDirName))
	flags.BoolVarP(&opts.Generate, "generate", "g", false, MsgFlagGenerate)
	flags.BoolVarP(&opts.Quick, "quick", "q", false, MsgFlagQuick)
	flags.BoolVar(&opts.Verbose, "verbose", false, MsgFlagVerbose)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgErrInvalidArgs)
	})

	initTemplateFormatting(rootCmd.OutOrStdout())
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, style.RenderMarkdown(examples(helpConfig(opts.ConfigPath, builtin)), style.IsPlain(out)))
	})

	return rootCmd
}

func run(cmd *cobra.Command, opts options.Options, args []string) error {
	p, err := paths.New(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, MsgErrPaths)
	}

	cfg, err := config.Load(p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := runner.New(runner.Env{
		Config:   cfg,
		Paths:    p,
		FS:       filesystem.NewOS(),
		Out:      out,
		Reporter: style.NewPrinter(out),
	})
	return r.Run(opts, args)
}

// helpConfig loads the configuration the run would use, so help shows the
// user's extension lists. Any failure falls back to the built-in settings.
func helpConfig(configPath string, builtin *config.Config) *config.Config {
	p, err := paths.New(configPath)
	if err != nil {
		return builtin
	}
	cfg, err := config.Load(p)
	if err != nil {
		return builtin
	}
	return cfg
}

func examples(cfg *config.Config) string {
	return fmt.Sprintf(MsgExamples,
		strings.Join(cfg.KnownMarkdownExtnames(), ", "),
		strings.Join(cfg.KnownTextileExtnames(), ", "),
		strings.Join(cfg.KnownRestExtnames(), ", "),
	)
}
