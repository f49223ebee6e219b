package config

import "fmt"

// LogLevel names a logrus level, plus "none" which discards the output.
type LogLevel string

const (
	Info  LogLevel = "info"
	Debug LogLevel = "debug"
	Trace LogLevel = "trace"
	None  LogLevel = "none"
)

type Logging struct {
	Level LogLevel `mapstructure:"level"`
}

type OutputFormat string

const (
	JSONOutput OutputFormat = "json"
	YAMLOutput OutputFormat = "yaml"
)

type Output struct {
	Format OutputFormat `mapstructure:"format"`
	Indent bool         `mapstructure:"indent"`
}

type CloudEvents struct {
	Enabled bool   `mapstructure:"enabled"`
	Source  string `mapstructure:"source"`
}

type Bulk struct {
	// Wire label applied to export/import records that carry no importMode.
	DefaultImportMode string `mapstructure:"default_import_mode"`
}

type RegistryToolConfig struct {
	Logs        Logging     `mapstructure:"logs"`
	Output      Output      `mapstructure:"output"`
	CloudEvents CloudEvents `mapstructure:"cloudevents"`
	Bulk        Bulk        `mapstructure:"bulk"`
}

var RegistryToolDefaults = RegistryToolConfig{
	Logs: Logging{
		Level: Info,
	},
	Output: Output{
		Format: JSONOutput,
		Indent: true,
	},
	CloudEvents: CloudEvents{
		Enabled: false,
		Source:  "registryctl",
	},
	Bulk: Bulk{
		DefaultImportMode: "createOrUpdate",
	},
}

// Validate rejects settings the tool cannot act on. Log levels are not checked
// here: an unknown level falls back to info.
func (c *RegistryToolConfig) Validate() error {
	switch c.Output.Format {
	case JSONOutput, YAMLOutput:
	default:
		return fmt.Errorf("unsupported output format '%s'", c.Output.Format)
	}

	if c.CloudEvents.Enabled && c.CloudEvents.Source == "" {
		return fmt.Errorf("cloudevents.source cannot be empty when cloud events are enabled")
	}

	return nil
}
