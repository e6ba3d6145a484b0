package gsgen

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/config"
	"gsgen/pkg/logger"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gsgen",
		Short:         "Generate typed Go accessors from GSettings schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (yaml)")
	flags.StringP("schema", "s", "", "schema file (.gschema.xml)")
	flags.String("id", "", "schema id, may be omitted if the file holds one schema")
	flags.StringP("output", "o", "", "output file")
	flags.StringP("package", "p", "", "package name")
	flags.StringP("type", "t", "", "settings type name")
	flags.String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	flags.Bool("log-json", false, "log in JSON")
	flags.Bool("log-source", false, "log caller locations")

	rootCmd.AddCommand(
		newGenerateCommand(),
		newDescribeCommand(),
		newWatchCommand(),
	)
	return rootCmd
}

// setup loads the configuration and stores it, together with the logger
// built from it, in the command context.
func setup(cmd *cobra.Command) error {
	level, json, source, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.SetupLogger(level, json, source)

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return errorst.Wrap(err, "failed to get config flag")
	}
	cfg, err := config.NewLoader().Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Log.Level != level || cfg.Log.JSON != json || cfg.Log.Source != source {
		log = logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Source)
	}
	log.Debug("loaded configuration", "config", path, "schema", cfg.Schema.File, "output", cfg.Output.File)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.ContextWithLogger(ctx, log)
	ctx = config.ContextWithConfig(ctx, cfg)
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the CLI until it finishes or the process is interrupted.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logger.FromContext(ctx).Error("gsgen failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
