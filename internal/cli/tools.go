package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/kolah/mcpforge/internal/config"
	"github.com/kolah/mcpforge/internal/zod"
	"github.com/spf13/cobra"
)

func ToolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools an OpenAPI description would produce",
		RunE:  runTools,
	}

	config.BindSpecFlags(cmd)

	return cmd
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return MapError(err)
	}
	if err := cfg.Validate(); err != nil {
		return MapError(err)
	}

	naming, err := zod.ParseNamingStyle(cfg.Naming.Style)
	if err != nil {
		return MapError(err)
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	spec, err := loadSpec(cmd, log, cfg.Spec)
	if err != nil {
		return MapError(err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tMETHOD\tPATH\tPARAMS")
	for _, op := range spec.Operations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", zod.ToolName(op, naming), op.UpperMethod(), op.Path, len(op.Parameters))
	}
	return w.Flush()
}
