package gsgen

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/config"
	"gsgen/pkg/logger"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the schema or config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return errorst.Wrap(err, "failed to get config flag")
			}
			reload := func() (*config.Config, error) {
				return config.NewLoader().Load(path, cmd.Flags())
			}
			err = watch(cmd.Context(), config.FromContext(cmd.Context()), path, reload)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// watch generates once, then again on every change of the schema or config
// file. Failed passes are logged and do not stop watching.
func watch(ctx context.Context, cfg *config.Config, configPath string, reload func() (*config.Config, error)) error {
	log := logger.FromContext(ctx)

	w, err := config.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(cfg.Schema.File); err != nil {
		return err
	}
	if configPath != "" {
		if err := w.Add(configPath); err != nil {
			return err
		}
	}

	if err := gen(ctx, cfg); err != nil {
		log.Error("generation failed", "error", err)
	}

	changes := make(chan string, 1)
	w.OnChange(func(path string) {
		select {
		case changes <- path:
		default:
		}
	})

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for {
		select {
		case err := <-done:
			return err
		case path := <-changes:
			log.Info("change detected", "path", path)
			next, err := reload()
			if err != nil {
				log.Error("failed to reload configuration", "error", err)
				continue
			}
			if next.Schema.File != cfg.Schema.File {
				if err := w.Add(next.Schema.File); err != nil {
					log.Error("failed to watch schema file", "error", err)
				}
			}
			cfg = next
			if err := gen(ctx, cfg); err != nil {
				log.Error("generation failed", "error", err)
			}
		}
	}
}
