package registryctl

import (
	"github.com/spf13/cobra"
)

// NewRootCommand wires every registryctl subcommand to app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Build, validate and convert device registry documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Out == nil {
				app.Out = cmd.OutOrStdout()
			}
			if app.In == nil {
				app.In = cmd.InOrStdin()
			}
			return app.init()
		},
	}

	root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "config file (defaults to $REGISTRY_CONFIG_FILE)")
	root.PersistentFlags().StringVarP(&app.output, "output", "o", "", "output format: json or yaml")
	root.PersistentFlags().BoolVar(&app.cloudEvent, "cloudevent", false, "wrap the output in a CloudEvent")
	root.PersistentFlags().BoolVar(&app.cloudEventInput, "cloudevent-input", false, "read the input document from the data of a CloudEvent")

	root.AddCommand(
		newDeviceCommand(app),
		newBulkCommand(app),
		newJobCommand(app),
		newStatsCommand(app),
	)

	return root
}
