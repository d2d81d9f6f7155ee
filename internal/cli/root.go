package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mcpforge",
		Short:         "mcpforge - turn an OpenAPI description into an MCP tool server",
		Version:       "1.0.0",
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(GenerateCommand(), ToolsCommand())

	return root
}
