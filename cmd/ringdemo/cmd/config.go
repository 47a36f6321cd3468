package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			data, err := resolved.Config.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			out := cmd.OutOrStdout()
			if resolved.Path != "" {
				fmt.Fprintf(out, "# from %s\n", resolved.Path)
			} else {
				fmt.Fprintln(out, "# defaults")
			}
			_, err = out.Write(data)
			return err
		},
	}
}
