package gsgen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/config"
	"gsgen/pkg/logger"
	"gsgen/pkg/schemas"
	"gsgen/pkg/settingsgen"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the accessor file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen(cmd.Context(), config.FromContext(cmd.Context()))
		},
	}
}

// build runs the pipeline up to the generated unit.
func build(ctx context.Context, cfg *config.Config) (*schemas.SchemaList, *settingsgen.Unit, error) {
	list, err := schemas.FromXMLFile(cfg.Schema.File)
	if err != nil {
		return nil, nil, errorst.Wrap(err, "failed to load schema file <%s>", cfg.Schema.File)
	}
	unit, err := settingsgen.Generate(ctx, list, cfg.Options())
	if err != nil {
		return nil, nil, err
	}
	return list, unit, nil
}

func gen(ctx context.Context, cfg *config.Config) error {
	_, unit, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	src, err := settingsgen.Render(unit, cfg.Output.Package)
	if err != nil {
		return err
	}
	if err := writeFile(cfg.Output.File, src); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("generated accessors",
		"schema", unit.SchemaID, "type", unit.TypeName, "keys", len(unit.Accessors), "output", cfg.Output.File)
	return nil
}

// writeFile replaces path with data, leaving it untouched on failure.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorst.Wrap(err, "failed to create output directory <%s>", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errorst.Wrap(err, "failed to create temp file in <%s>", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errorst.Wrap(err, "failed to write <%s>", tmp.Name())
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return errorst.Wrap(err, "failed to chmod <%s>", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errorst.Wrap(err, "failed to close <%s>", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errorst.Wrap(err, "failed to replace <%s>", path)
	}
	return nil
}
