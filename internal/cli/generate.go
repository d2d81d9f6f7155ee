package cli

import (
	"fmt"

	"github.com/kolah/mcpforge/internal/codegen"
	"github.com/kolah/mcpforge/internal/config"
	"github.com/kolah/mcpforge/internal/loader"
	"github.com/kolah/mcpforge/internal/model"
	"github.com/kolah/mcpforge/internal/scaffold"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a TypeScript MCP server project from an OpenAPI description",
		RunE:  runGenerate,
	}

	config.BindSpecFlags(cmd)
	config.BindGenerateFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return MapError(err)
	}
	if err := cfg.ValidateOutput(); err != nil {
		return MapError(err)
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	spec, err := loadSpec(cmd, log, cfg.Spec)
	if err != nil {
		return MapError(err)
	}

	gen, err := codegen.New(cfg)
	if err != nil {
		return MapError(fmt.Errorf("creating generator: %w", err))
	}

	outputs, err := gen.Generate(spec)
	if err != nil {
		return MapError(fmt.Errorf("generating code: %w", err))
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	scaffolder, err := scaffold.New(cfg.Scaffold.Dir)
	if err != nil {
		return MapError(err)
	}
	log.WithField("source", scaffolder.Origin()).Debug("copying project scaffold")

	if err := scaffolder.Prepare(cfg.OutputDir); err != nil {
		return MapError(err)
	}

	written, err := scaffold.Write(cfg.OutputDir, outputs)
	if err != nil {
		return MapError(err)
	}
	for _, path := range written {
		cmd.PrintErrf("Written: %s\n", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated TypeScript code in: %s\n", cfg.OutputDir)
	return nil
}

// loadSpec reads the description, reports what was found and resolves every
// operation.
func loadSpec(cmd *cobra.Command, log *logrus.Logger, path string) (*model.Spec, error) {
	result, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}

	for _, w := range result.Warnings {
		log.Warn(w)
	}

	spec := loader.Transform(result)

	version := result.Version
	if version == "" {
		version = "(unknown version)"
	}
	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))
	log.WithFields(logrus.Fields{
		"file":   path,
		"format": result.Format,
		"bytes":  len(result.RawData),
	}).Debug("description loaded")

	return spec, nil
}
