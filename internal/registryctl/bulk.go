package registryctl

import (
	"fmt"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/services"
	"github.com/spf13/cobra"
)

func newBulkCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Work with newline-delimited bulk import/export files",
	}

	cmd.AddCommand(newBulkNewCommand(app), newBulkParseCommand(app))
	return cmd
}

func newBulkNewCommand(app *App) *cobra.Command {
	var (
		count      int
		authType   string
		importMode string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a bulk import file with random device records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errs.InvalidArgument(fmt.Errorf("--count must be at least 1"))
			}

			if importMode == "" {
				importMode = app.Config.Bulk.DefaultImportMode
			}

			mode, err := models.ParseImportMode(importMode)
			if err != nil {
				return err
			}

			devices := make([]*models.ExportImportDevice, 0, count)
			for i := 0; i < count; i++ {
				device, err := models.NewExportImportDevice()
				if err != nil {
					return err
				}

				if err := device.Authentication.SetAuthenticationType(models.AuthenticationType(authType)); err != nil {
					return err
				}

				device.ImportMode = mode
				devices = append(devices, device)
			}

			ctx := app.context(helpers.EventTypeExportImportDevice, "")
			return app.Codec.EncodeExportImportDevices(ctx, services.EncodeExportImportDevicesInput{Writer: app.Out, Devices: devices})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of records")
	cmd.Flags().StringVar(&authType, "auth", string(models.AuthenticationTypeSas), "authentication type of every record")
	cmd.Flags().StringVar(&importMode, "import-mode", "", "import mode of every record (defaults to bulk.default_import_mode)")

	return cmd
}

func newBulkParseCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Validate a bulk file and print its normalized records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := app.openInput(args)
			if err != nil {
				return err
			}
			defer input.Close()

			ctx := app.context(helpers.EventTypeExportImportDevice, "")
			devices, err := app.Codec.DecodeExportImportDevices(ctx, services.DecodeExportImportDevicesInput{
				Reader:            input,
				DefaultImportMode: models.ImportMode(app.Config.Bulk.DefaultImportMode),
			})
			if err != nil {
				return err
			}

			return app.Codec.EncodeExportImportDevices(ctx, services.EncodeExportImportDevicesInput{Writer: app.Out, Devices: devices})
		},
	}
}
