package registryctl

import (
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/services"
	"github.com/spf13/cobra"
)

func newJobCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Work with bulk job property documents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse [file]",
		Short: "Validate a job properties document and print its normalized form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := app.readInput(args)
			if err != nil {
				return err
			}

			ctx := app.context(helpers.EventTypeJobProperties, "")
			job, err := app.Codec.DecodeJobProperties(ctx, services.DecodeJobPropertiesInput{Payload: payload})
			if err != nil {
				return err
			}

			ctx = app.context(helpers.EventTypeJobProperties, job.JobID())
			document, err := app.Codec.EncodeJobProperties(ctx, services.EncodeJobPropertiesInput{Job: job})
			if err != nil {
				return err
			}

			return app.render(ctx, document)
		},
	})

	return cmd
}

func newStatsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Work with registry statistics documents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "parse [file]",
		Short: "Validate a registry statistics document and print its normalized form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := app.readInput(args)
			if err != nil {
				return err
			}

			ctx := app.context(helpers.EventTypeRegistryStatistics, "")
			stats, err := app.Codec.DecodeRegistryStatistics(ctx, services.DecodeRegistryStatisticsInput{Payload: payload})
			if err != nil {
				return err
			}

			document, err := app.Codec.EncodeRegistryStatistics(ctx, services.EncodeRegistryStatisticsInput{Statistics: stats})
			if err != nil {
				return err
			}

			return app.render(ctx, document)
		},
	})

	return cmd
}
