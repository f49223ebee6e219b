package services

import (
	"context"
	"io"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

// RegistryCodecService converts registry documents between their wire form and the
// domain model.
type RegistryCodecService interface {
	DecodeDevice(ctx context.Context, input DecodeDeviceInput) (*models.Device, error)
	EncodeDevice(ctx context.Context, input EncodeDeviceInput) ([]byte, error)
	PatchDevice(ctx context.Context, input PatchDeviceInput) (*models.Device, error)

	DecodeExportImportDevices(ctx context.Context, input DecodeExportImportDevicesInput) ([]*models.ExportImportDevice, error)
	EncodeExportImportDevices(ctx context.Context, input EncodeExportImportDevicesInput) error

	DecodeJobProperties(ctx context.Context, input DecodeJobPropertiesInput) (*models.JobProperties, error)
	EncodeJobProperties(ctx context.Context, input EncodeJobPropertiesInput) ([]byte, error)

	DecodeRegistryStatistics(ctx context.Context, input DecodeRegistryStatisticsInput) (*models.RegistryStatistics, error)
	EncodeRegistryStatistics(ctx context.Context, input EncodeRegistryStatisticsInput) ([]byte, error)
}

type DecodeDeviceInput struct {
	Payload []byte `validate:"required"`
}

type EncodeDeviceInput struct {
	Device *models.Device `validate:"required"`
}

type PatchDeviceInput struct {
	Device  *models.Device              `validate:"required"`
	Patches []serializer.PatchOperation `validate:"required,min=1"`
}

type DecodeExportImportDevicesInput struct {
	Reader io.Reader `validate:"required"`

	// Applied to records that carry no import mode. Empty leaves them unset.
	DefaultImportMode models.ImportMode
}

type EncodeExportImportDevicesInput struct {
	Writer  io.Writer `validate:"required"`
	Devices []*models.ExportImportDevice
}

type DecodeJobPropertiesInput struct {
	Payload []byte `validate:"required"`
}

type EncodeJobPropertiesInput struct {
	Job *models.JobProperties `validate:"required"`
}

type DecodeRegistryStatisticsInput struct {
	Payload []byte `validate:"required"`
}

type EncodeRegistryStatisticsInput struct {
	Statistics *models.RegistryStatistics `validate:"required"`
}
