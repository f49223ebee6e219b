package mock

import (
	"context"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/services"
	"github.com/stretchr/testify/mock"
)

type MockRegistryCodecService struct {
	mock.Mock
}

func (m *MockRegistryCodecService) DecodeDevice(ctx context.Context, input services.DecodeDeviceInput) (*models.Device, error) {
	args := m.Called(ctx, input)
	device, _ := args.Get(0).(*models.Device)
	return device, args.Error(1)
}

func (m *MockRegistryCodecService) EncodeDevice(ctx context.Context, input services.EncodeDeviceInput) ([]byte, error) {
	args := m.Called(ctx, input)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockRegistryCodecService) PatchDevice(ctx context.Context, input services.PatchDeviceInput) (*models.Device, error) {
	args := m.Called(ctx, input)
	device, _ := args.Get(0).(*models.Device)
	return device, args.Error(1)
}

func (m *MockRegistryCodecService) DecodeExportImportDevices(ctx context.Context, input services.DecodeExportImportDevicesInput) ([]*models.ExportImportDevice, error) {
	args := m.Called(ctx, input)
	devices, _ := args.Get(0).([]*models.ExportImportDevice)
	return devices, args.Error(1)
}

func (m *MockRegistryCodecService) EncodeExportImportDevices(ctx context.Context, input services.EncodeExportImportDevicesInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockRegistryCodecService) DecodeJobProperties(ctx context.Context, input services.DecodeJobPropertiesInput) (*models.JobProperties, error) {
	args := m.Called(ctx, input)
	job, _ := args.Get(0).(*models.JobProperties)
	return job, args.Error(1)
}

func (m *MockRegistryCodecService) EncodeJobProperties(ctx context.Context, input services.EncodeJobPropertiesInput) ([]byte, error) {
	args := m.Called(ctx, input)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockRegistryCodecService) DecodeRegistryStatistics(ctx context.Context, input services.DecodeRegistryStatisticsInput) (*models.RegistryStatistics, error) {
	args := m.Called(ctx, input)
	stats, _ := args.Get(0).(*models.RegistryStatistics)
	return stats, args.Error(1)
}

func (m *MockRegistryCodecService) EncodeRegistryStatistics(ctx context.Context, input services.EncodeRegistryStatisticsInput) ([]byte, error) {
	args := m.Called(ctx, input)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
