package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [segments...]",
		Short: "Generate segment environments",
		Long: "Generate builds the named segments from the current environment.\n" +
			"With no arguments every configured segment is generated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd)
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				return c.app.Watch(cmd.Context(), args, opts)
			}
			return c.app.Generate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the environment or config changes")

	return cmd
}
