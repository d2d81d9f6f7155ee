package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/kolah/mcpforge/internal/zod"
	"github.com/spf13/cobra"
)

// DefaultFile is picked up from the working directory when --config is not set.
const DefaultFile = "mcpforge.yaml"

type Config struct {
	Spec      string         `koanf:"spec"`
	OutputDir string         `koanf:"output-dir"`
	Scaffold  ScaffoldConfig `koanf:"scaffold"`
	Templates TemplateConfig `koanf:"templates"`
	Naming    NamingConfig   `koanf:"naming"`
	Workers   int            `koanf:"workers"`
	LogLevel  string         `koanf:"log-level"`
}

type ScaffoldConfig struct {
	Dir string `koanf:"dir"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type NamingConfig struct {
	Style string `koanf:"style"`
}

// BindSpecFlags binds the flags every command reading a description needs.
func BindSpecFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("file", "f", "", "Path to the OpenAPI JSON file")
	flags.String("naming-style", "", "Tool name style: verbatim, snake, camel")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
}

// BindGenerateFlags binds the output related flags of the generate command.
func BindGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("output", "o", "", "Path to write the output directory")
	flags.String("scaffold", "", "Project scaffold directory (default: embedded scaffold)")
	flags.String("templates", "", "Custom templates directory")
	flags.Int("workers", 0, "Concurrent tool renderers (0: one per CPU)")
	flags.Bool("dry-run", false, "Print output without writing files")
}

// Load layers flags over the config file. Validation is left to the caller
// because not every command needs an output directory.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile := getString(cmd, "config")
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func getString(cmd *cobra.Command, name string) string {
	if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
		return v
	}
	if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
		return v
	}
	return ""
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	if v := getString(cmd, "file"); v != "" {
		m["spec"] = v
	}
	if v := getString(cmd, "output"); v != "" {
		m["output-dir"] = v
	}
	if v := getString(cmd, "scaffold"); v != "" {
		m["scaffold.dir"] = v
	}
	if v := getString(cmd, "templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getString(cmd, "naming-style"); v != "" {
		m["naming.style"] = v
	}
	if v := getString(cmd, "log-level"); v != "" {
		m["log-level"] = v
	}
	if flagChanged("workers") {
		if v, err := cmd.Flags().GetInt("workers"); err == nil {
			m["workers"] = v
		}
	}

	return m
}

// Validate checks what every command needs: a description to read.
func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required (--file)")
	}

	if _, err := zod.ParseNamingStyle(c.Naming.Style); err != nil {
		return err
	}

	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}

	return nil
}

// ValidateOutput additionally requires an output directory.
func (c *Config) ValidateOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required (--output)")
	}
	return nil
}
