// Package cli implements the payerloader command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pavani8370/Multi-source/internal/config"
	"github.com/Pavani8370/Multi-source/internal/logging"
	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

type rootOptions struct {
	configPath string
	verbose    bool
	flags      config.Config
}

// NewRootCmd returns the payerloader root command.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "payerloader",
		Short: "Multi-source payer claims loader",
		Long: `payerloader reads payer claims from a CSV, Parquet or JSON file (or a built-in
sample for the manual payer), applies payer pricing, stamps the ingestion time
and reports the table the claims would be loaded into.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (missing or invalid argument)
  10 - Data source error (file missing, unreadable or unsupported)
  11 - Data shape error (missing column or type mismatch)
  12 - Config file not found`,
		Example: `  payerloader --payer manual
  payerloader --payer anthem --source claims.csv
  payerloader --config payerloader.yaml --log-format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}

			_, err = Run(cfg, logger)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.flags.Payer, "payer", "", "Name of the payer ("+strings.Join(payerloader.Payers(), ", ")+")")
	f.StringVar(&opts.flags.Source, "source", "", "Path to claims file (required unless --payer manual)")
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML config file; flags override its values")
	f.StringVar(&opts.flags.LogFormat, "log-format", "", "Log format: "+strings.Join(logging.Formats(), ", ")+" (default text)")
	f.StringVar(&opts.flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", payerloader.ErrInvalidArgument, err)
	})

	_ = cmd.RegisterFlagCompletionFunc("payer", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return payerloader.Payers(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("log-format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return logging.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagFilename("source", "csv", "parquet", "json")
	_ = cmd.MarkFlagFilename("config", "yaml", "yml")

	return cmd
}

// config layers the flags over the config file, if one was named.
func (o *rootOptions) config() (config.Config, error) {
	var cfg config.Config
	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileCfg
	}
	cfg.Merge(o.flags)
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
