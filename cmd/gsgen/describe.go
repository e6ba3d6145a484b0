package gsgen

import (
	"github.com/spf13/cobra"
	"github.com/thorn-jmh/errorst"
	"gopkg.in/yaml.v3"

	"gsgen/pkg/config"
	"gsgen/pkg/schemas"
	"gsgen/pkg/settingsgen"
)

type description struct {
	Signatures []schemas.Signature `yaml:"signatures,omitempty"`
	Unit       *settingsgen.Unit   `yaml:"unit"`
}

func newDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the resolved accessors as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			list, unit, err := build(ctx, cfg)
			if err != nil {
				return err
			}
			out := description{Unit: unit}

			withSignatures, err := cmd.Flags().GetBool("signatures")
			if err != nil {
				return errorst.Wrap(err, "failed to get signatures flag")
			}
			if withSignatures {
				sch, err := list.Select(unit.SchemaID)
				if err != nil {
					return err
				}
				if out.Signatures, err = sch.Signatures(); err != nil {
					return err
				}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			if err := enc.Encode(out); err != nil {
				return errorst.Wrap(err, "failed to encode description")
			}
			return nil
		},
	}
	cmd.Flags().Bool("signatures", false, "also list the distinct signatures of the schema")
	return cmd
}
