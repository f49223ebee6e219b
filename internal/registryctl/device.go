package registryctl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDeviceCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Work with device identity documents",
	}

	cmd.AddCommand(newDeviceNewCommand(app), newDeviceParseCommand(app), newDevicePatchCommand(app))
	return cmd
}

func newDeviceNewCommand(app *App) *cobra.Command {
	var (
		deviceID      string
		authType      string
		status        string
		primaryCert   string
		secondaryCert string
		certOut       string
		certValidity  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a device document with generated credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deviceID == "" {
				deviceID = uuid.NewString()
			}

			device, err := models.NewDevice(deviceID, models.AuthenticationType(authType))
			if err != nil {
				return err
			}

			deviceStatus, err := models.ParseDeviceStatus(status)
			if err != nil {
				return err
			}
			device.Status = deviceStatus

			if certOut != "" {
				if primaryCert != "" || secondaryCert != "" {
					return errs.InvalidArgument(fmt.Errorf("--cert-out cannot be combined with --primary-cert or --secondary-cert"))
				}

				primaryCert, secondaryCert, err = issueCertificates(certOut, device.DeviceID, certValidity)
				if err != nil {
					return err
				}
			}

			if primaryCert != "" || secondaryCert != "" {
				thumbprint, err := thumbprintFromFiles(primaryCert, secondaryCert)
				if err != nil {
					return err
				}

				if err := device.Authentication.SetThumbprint(thumbprint); err != nil {
					return err
				}
			}

			ctx := app.context(helpers.EventTypeDevice, device.DeviceID)
			document, err := app.Codec.EncodeDevice(ctx, services.EncodeDeviceInput{Device: device})
			if err != nil {
				return err
			}

			return app.render(ctx, document)
		},
	}

	cmd.Flags().StringVar(&deviceID, "id", "", "device id (a random UUID when empty)")
	cmd.Flags().StringVar(&authType, "auth", string(models.AuthenticationTypeSas), "authentication type: sas, selfSigned or certificateAuthority")
	cmd.Flags().StringVar(&status, "status", string(models.DeviceEnabled), "device status: Enabled or Disabled")
	cmd.Flags().StringVar(&primaryCert, "primary-cert", "", "PEM certificate whose thumbprint becomes the primary thumbprint (implies selfSigned)")
	cmd.Flags().StringVar(&certOut, "cert-out", "", "issue a self-signed certificate pair into this directory and use its thumbprints (implies selfSigned)")
	cmd.Flags().DurationVar(&certValidity, "cert-validity", 365*24*time.Hour, "validity of the certificates issued with --cert-out")
	cmd.Flags().StringVar(&secondaryCert, "secondary-cert", "", "PEM certificate whose thumbprint becomes the secondary thumbprint (defaults to the primary)")

	return cmd
}

func thumbprintFromFiles(primaryPath, secondaryPath string) (*models.X509Thumbprint, error) {
	if primaryPath == "" {
		return nil, errs.InvalidArgument(fmt.Errorf("--primary-cert is required when --secondary-cert is set"))
	}

	if secondaryPath == "" {
		secondaryPath = primaryPath
	}

	primary, err := helpers.ReadCertificateFromFile(primaryPath)
	if err != nil {
		return nil, fmt.Errorf("could not read primary certificate: %w", err)
	}

	secondary, err := helpers.ReadCertificateFromFile(secondaryPath)
	if err != nil {
		return nil, fmt.Errorf("could not read secondary certificate: %w", err)
	}

	return models.NewX509ThumbprintFromCertificates(primary, secondary)
}

// issueCertificates writes primary and secondary certificate/key PEM pairs for deviceID
// into dir and returns the certificate paths.
func issueCertificates(dir, deviceID string, validity time.Duration) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("could not create certificate directory: %w", err)
	}

	paths := []string{}
	for _, slot := range []string{"primary", "secondary"} {
		cert, key, err := helpers.GenerateSelfSignedDeviceCertificate(deviceID, validity)
		if err != nil {
			return "", "", err
		}

		keyPEM, err := helpers.PrivateKeyToPEM(key)
		if err != nil {
			return "", "", err
		}

		certPath := filepath.Join(dir, fmt.Sprintf("%s-%s.crt", deviceID, slot))
		if err := os.WriteFile(certPath, helpers.CertificateToPEM(cert), 0o644); err != nil {
			return "", "", fmt.Errorf("could not write %s certificate: %w", slot, err)
		}

		keyPath := filepath.Join(dir, fmt.Sprintf("%s-%s.key", deviceID, slot))
		if err := os.WriteFile(keyPath, keyPEM, 0o600); err != nil {
			return "", "", fmt.Errorf("could not write %s key: %w", slot, err)
		}

		log.Debugf("issued %s certificate for device '%s' into %s", slot, deviceID, certPath)
		paths = append(paths, certPath)
	}

	return paths[0], paths[1], nil
}

func newDeviceParseCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Validate a device document and print its normalized form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := app.readInput(args)
			if err != nil {
				return err
			}

			ctx := app.context(helpers.EventTypeDevice, "")
			device, err := app.Codec.DecodeDevice(ctx, services.DecodeDeviceInput{Payload: payload})
			if err != nil {
				return err
			}

			ctx = app.context(helpers.EventTypeDevice, device.DeviceID)
			document, err := app.Codec.EncodeDevice(ctx, services.EncodeDeviceInput{Device: device})
			if err != nil {
				return err
			}

			return app.render(ctx, document)
		},
	}
}

func newDevicePatchCommand(app *App) *cobra.Command {
	var (
		patchFile    string
		status       string
		statusReason string
	)

	cmd := &cobra.Command{
		Use:   "patch [--patch <file>] [--status <status>] [--status-reason <reason>] [device-file]",
		Short: "Apply a JSON patch to a device document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patches []serializer.PatchOperation
			if patchFile != "" {
				patchBytes, err := os.ReadFile(patchFile)
				if err != nil {
					return fmt.Errorf("could not read patch file: %w", err)
				}

				if err := json.Unmarshal(patchBytes, &patches); err != nil {
					return errs.MalformedPayload(fmt.Errorf("patch file: %w", err))
				}
			}

			builder := helpers.NewPatchBuilder()
			if cmd.Flags().Changed("status") {
				builder.Replace(helpers.JSONPointerBuilder("status"), status)
			}
			if cmd.Flags().Changed("status-reason") {
				builder.Add(helpers.JSONPointerBuilder("statusReason"), statusReason)
			}
			patches = append(patches, builder.Build()...)

			if len(patches) == 0 {
				return errs.InvalidArgument(fmt.Errorf("nothing to patch: use --patch, --status or --status-reason"))
			}

			payload, err := app.readInput(args)
			if err != nil {
				return err
			}

			ctx := app.context(helpers.EventTypeDevice, "")
			device, err := app.Codec.DecodeDevice(ctx, services.DecodeDeviceInput{Payload: payload})
			if err != nil {
				return err
			}

			patched, err := app.Codec.PatchDevice(ctx, services.PatchDeviceInput{Device: device, Patches: patches})
			if err != nil {
				return err
			}

			ctx = app.context(helpers.EventTypeDevice, patched.DeviceID)
			document, err := app.Codec.EncodeDevice(ctx, services.EncodeDeviceInput{Device: patched})
			if err != nil {
				return err
			}

			return app.render(ctx, document)
		},
	}

	cmd.Flags().StringVar(&patchFile, "patch", "", "file holding a JSON array of RFC 6902 operations")
	cmd.Flags().StringVar(&status, "status", "", "replace the device status, applied after --patch")
	cmd.Flags().StringVar(&statusReason, "status-reason", "", "set the status reason, applied after --patch")

	return cmd
}
