package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
	"github.com/sirupsen/logrus"
)

var codecValidate = validator.New()

type RegistryCodecBackend struct {
	logger *logrus.Entry
}

type RegistryCodecBuilder struct {
	Logger *logrus.Entry
}

func NewRegistryCodecService(builder RegistryCodecBuilder) RegistryCodecService {
	logger := builder.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &RegistryCodecBackend{
		logger: logger,
	}
}

func validateInput(lFunc *logrus.Entry, op string, input any) error {
	err := codecValidate.Struct(input)
	if err != nil {
		lFunc.Errorf("%s struct validation error: %s", op, err)
		return errs.InvalidArgument(fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func (svc *RegistryCodecBackend) DecodeDevice(ctx context.Context, input DecodeDeviceInput) (*models.Device, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "DecodeDevice", input); err != nil {
		return nil, err
	}

	parser, err := serializer.NewDeviceParserFromJSON(input.Payload)
	if err != nil {
		lFunc.Errorf("could not parse device document: %s", err)
		return nil, err
	}

	device, err := models.DeviceFromParser(parser)
	if err != nil {
		lFunc.Errorf("could not convert device '%s': %s", parser.DeviceID, err)
		return nil, err
	}

	lFunc.Debugf("decoded device '%s' with '%s' authentication", device.DeviceID, device.AuthenticationType())
	return device, nil
}

func (svc *RegistryCodecBackend) EncodeDevice(ctx context.Context, input EncodeDeviceInput) ([]byte, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "EncodeDevice", input); err != nil {
		return nil, err
	}

	parser := input.Device.ToParser()
	if err := parser.Validate(); err != nil {
		lFunc.Errorf("device is not encodable: %s", err)
		return nil, err
	}

	lFunc.Debugf("encoding device '%s'", input.Device.DeviceID)
	return parser.ToJSON()
}

// PatchDevice applies RFC 6902 operations to the wire form of the device and decodes
// the result again, so the patched device passes the same checks as any other input.
func (svc *RegistryCodecBackend) PatchDevice(ctx context.Context, input PatchDeviceInput) (*models.Device, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "PatchDevice", input); err != nil {
		return nil, err
	}

	document, err := input.Device.ToParser().ToJSON()
	if err != nil {
		lFunc.Errorf("could not encode device '%s': %s", input.Device.DeviceID, err)
		return nil, err
	}

	lFunc.Debugf("applying %d patches to device '%s'", len(input.Patches), input.Device.DeviceID)
	patched, err := helpers.ApplyPatchesToJSON(document, input.Patches)
	if err != nil {
		lFunc.Errorf("failed to apply patches to device '%s': %s", input.Device.DeviceID, err)
		return nil, errs.InvalidArgument(err)
	}

	parser, err := serializer.NewDeviceParserFromJSON(patched)
	if err != nil {
		lFunc.Errorf("patched device '%s' is not valid: %s", input.Device.DeviceID, err)
		return nil, err
	}

	device, err := models.DeviceFromParser(parser)
	if err != nil {
		lFunc.Errorf("patched device '%s' is not valid: %s", input.Device.DeviceID, err)
		return nil, err
	}

	device.ForceUpdate = input.Device.ForceUpdate
	return device, nil
}

func (svc *RegistryCodecBackend) DecodeExportImportDevices(ctx context.Context, input DecodeExportImportDevicesInput) ([]*models.ExportImportDevice, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "DecodeExportImportDevices", input); err != nil {
		return nil, err
	}

	var defaultMode models.ImportMode
	if input.DefaultImportMode != "" {
		mode, err := models.ParseImportMode(string(input.DefaultImportMode))
		if err != nil {
			lFunc.Errorf("invalid default import mode: %s", err)
			return nil, errs.InvalidArgument(err)
		}
		defaultMode = mode
	}

	devices, err := models.DecodeBulk(input.Reader)
	if err != nil {
		lFunc.Errorf("could not decode bulk records: %s", err)
		return nil, err
	}

	for _, device := range devices {
		if device.ImportMode == "" {
			device.ImportMode = defaultMode
		}
	}

	lFunc.Debugf("decoded %d bulk records", len(devices))
	return devices, nil
}

func (svc *RegistryCodecBackend) EncodeExportImportDevices(ctx context.Context, input EncodeExportImportDevicesInput) error {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "EncodeExportImportDevices", input); err != nil {
		return err
	}

	for i, device := range input.Devices {
		if device == nil {
			lFunc.Errorf("bulk record %d is nil", i+1)
			return errs.InvalidArgument(fmt.Errorf("record %d: %w", i+1, errs.ErrExportImportIDRequired))
		}

		if err := device.ToParser().Validate(); err != nil {
			lFunc.Errorf("bulk record %d is not encodable: %s", i+1, err)
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	lFunc.Debugf("encoding %d bulk records", len(input.Devices))
	return models.EncodeBulk(input.Writer, input.Devices)
}

func (svc *RegistryCodecBackend) DecodeJobProperties(ctx context.Context, input DecodeJobPropertiesInput) (*models.JobProperties, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "DecodeJobProperties", input); err != nil {
		return nil, err
	}

	parser, err := serializer.NewJobPropertiesParserFromJSON(input.Payload)
	if err != nil {
		lFunc.Errorf("could not parse job document: %s", err)
		return nil, err
	}

	job, err := models.JobPropertiesFromParser(parser)
	if err != nil {
		lFunc.Errorf("could not convert job '%s': %s", parser.JobID, err)
		return nil, err
	}

	lFunc.Debugf("decoded %s job '%s' in status %s", job.Type, job.JobID(), job.Status)
	return job, nil
}

func (svc *RegistryCodecBackend) EncodeJobProperties(ctx context.Context, input EncodeJobPropertiesInput) ([]byte, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "EncodeJobProperties", input); err != nil {
		return nil, err
	}

	parser := input.Job.ToParser()
	if err := parser.Validate(); err != nil {
		lFunc.Errorf("job is not encodable: %s", err)
		return nil, err
	}

	return parser.ToJSON()
}

func (svc *RegistryCodecBackend) DecodeRegistryStatistics(ctx context.Context, input DecodeRegistryStatisticsInput) (*models.RegistryStatistics, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "DecodeRegistryStatistics", input); err != nil {
		return nil, err
	}

	parser, err := serializer.NewRegistryStatisticsParserFromJSON(input.Payload)
	if err != nil {
		lFunc.Errorf("could not parse statistics document: %s", err)
		return nil, err
	}

	stats := models.RegistryStatisticsFromParser(parser)
	if !stats.Consistent() {
		lFunc.Warnf("registry statistics do not add up: total=%d enabled=%d disabled=%d", stats.TotalDeviceCount, stats.EnabledDeviceCount, stats.DisabledDeviceCount)
	}

	return stats, nil
}

func (svc *RegistryCodecBackend) EncodeRegistryStatistics(ctx context.Context, input EncodeRegistryStatisticsInput) ([]byte, error) {
	lFunc := helpers.ConfigureLogger(ctx, svc.logger)

	if err := validateInput(lFunc, "EncodeRegistryStatistics", input); err != nil {
		return nil, err
	}

	return input.Statistics.ToParser().ToJSON()
}
