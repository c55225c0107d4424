package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/metametaclass/hexed/internal/config"
)

// options holds the raw flag values before they are resolved into a
// config.Config.
type options struct {
	length     string
	skip       string
	octal      bool
	noGuides   bool
	noColors   bool
	noASCII    bool
	level      string
	configPath string
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hexed [flags] FILE",
		Short: "Print a file as a colored hex or octal table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			// a closed stdout must surface as EPIPE from Write, not kill the process
			signal.Ignore(syscall.SIGPIPE)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Execute(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Example:       "hexed -n 64 -s 0x100 /bin/ls",
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.length, "length", "n", "", "limits the amount of bytes to display")
	flags.StringVarP(&opts.skip, "skip", "s", "", "skips the first OFFSET bytes")
	flags.BoolVarP(&opts.octal, "octal", "o", false, "displays the bytes as octal numbers")
	flags.BoolVarP(&opts.noGuides, "no-guides", "G", false, "disables offset guides")
	flags.BoolVarP(&opts.noColors, "no-colors", "C", false, "disables colors in the output")
	flags.BoolVarP(&opts.noASCII, "no-ascii", "A", false, "disables the ASCII sidebar")
	flags.StringVarP(&opts.level, "level", "l", config.DefaultLogLevel, "log level")
	flags.StringVar(&opts.configPath, "config", "", "defaults file (default $XDG_CONFIG_HOME/hexed/config.yaml)")

	return rootCmd
}

// resolve builds the Config for path. Precedence, lowest first: built-in
// defaults, the defaults file, NO_COLOR, command line flags.
func (o *options) resolve(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Path = path

	if file := config.FindFile(o.configPath); file != "" {
		f, err := config.LoadFile(file)
		switch {
		case err == nil:
			f.Apply(cfg)
		case errors.Is(err, config.ErrConfigNotFound) && o.configPath == "":
		default:
			return nil, err
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Colors = false
	}

	if o.length != "" {
		n, err := config.ParseLength(o.length)
		if err != nil {
			return nil, err
		}
		cfg.SetLength(n)
	}
	if o.skip != "" {
		n, err := config.ParseOffset(o.skip)
		if err != nil {
			return nil, err
		}
		cfg.Offset = n
	}
	if o.octal {
		cfg.Base = config.Octal
	}
	if o.noGuides {
		cfg.Guides = false
	}
	if o.noColors {
		cfg.Colors = false
	}
	if o.noASCII {
		cfg.ASCII = false
	}
	if cmd.Flags().Changed("level") {
		cfg.LogLevel = o.level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
