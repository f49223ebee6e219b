package services

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/config"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/models"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() RegistryCodecService {
	return NewRegistryCodecService(RegistryCodecBuilder{
		Logger: helpers.SetupLogger(config.None, "registry", "codec-test"),
	})
}

func TestDecodeEncodeDevice(t *testing.T) {
	svc := newTestCodec()
	ctx := helpers.InitContext("test")

	doc := `{"deviceId":"device-1","status":"disabled","statusReason":"retired","connectionState":"Disconnected",` +
		`"authentication":{"type":"sas","symmetricKey":{"primaryKey":"p","secondaryKey":"s"}}}`

	device, err := svc.DecodeDevice(ctx, DecodeDeviceInput{Payload: []byte(doc)})
	require.NoError(t, err)
	assert.Equal(t, "device-1", device.DeviceID)
	assert.Equal(t, models.DeviceDisabled, device.Status)
	assert.Equal(t, "p", device.PrimaryKey())

	encoded, err := svc.EncodeDevice(ctx, EncodeDeviceInput{Device: device})
	require.NoError(t, err)

	again, err := svc.DecodeDevice(ctx, DecodeDeviceInput{Payload: encoded})
	require.NoError(t, err)
	assert.Equal(t, device, again)
}

func TestDecodeDeviceErrors(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	_, err := svc.DecodeDevice(ctx, DecodeDeviceInput{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = svc.DecodeDevice(ctx, DecodeDeviceInput{Payload: []byte("{")})
	assert.ErrorIs(t, err, errs.ErrMalformedPayload)

	_, err = svc.DecodeDevice(ctx, DecodeDeviceInput{Payload: []byte(`{"deviceId":"d","status":"BOGUS","authentication":{"type":"sas"}}`)})
	assert.ErrorIs(t, err, errs.ErrUnrecognizedEnumValue)
}

func TestEncodeDeviceRejectsInvalidDevice(t *testing.T) {
	svc := newTestCodec()

	_, err := svc.EncodeDevice(context.Background(), EncodeDeviceInput{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = svc.EncodeDevice(context.Background(), EncodeDeviceInput{Device: &models.Device{}})
	assert.ErrorIs(t, err, errs.ErrDeviceIDRequired)
}

func TestPatchDevice(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	device, err := models.NewDevice("device-1", models.AuthenticationTypeSas)
	require.NoError(t, err)
	device.SetForceUpdate(true)

	patches := helpers.NewPatchBuilder().
		Replace(helpers.JSONPointerBuilder("status"), "Disabled").
		Replace(helpers.JSONPointerBuilder("statusReason"), "lost").
		Replace(helpers.JSONPointerBuilder("authentication"), map[string]interface{}{"type": "certificateAuthority"}).
		Build()

	patched, err := svc.PatchDevice(ctx, PatchDeviceInput{Device: device, Patches: patches})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceDisabled, patched.Status)
	assert.Equal(t, "lost", patched.StatusReason)
	assert.Equal(t, models.AuthenticationTypeCertificateAuthority, patched.AuthenticationType())
	assert.True(t, patched.ForceUpdate)

	assert.Equal(t, models.DeviceEnabled, device.Status)
	assert.Equal(t, models.AuthenticationTypeSas, device.AuthenticationType())
}

func TestPatchDeviceRevalidates(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	device, err := models.NewDevice("device-1", models.AuthenticationTypeSas)
	require.NoError(t, err)

	testcases := []struct {
		name     string
		patches  []serializer.PatchOperation
		expected error
	}{
		{
			name:     "RemoveDeviceID",
			patches:  helpers.NewPatchBuilder().Remove(helpers.JSONPointerBuilder("deviceId")).Build(),
			expected: errs.ErrDeviceIDRequired,
		},
		{
			name:     "BogusConnectionState",
			patches:  helpers.NewPatchBuilder().Replace(helpers.JSONPointerBuilder("connectionState"), "Offline").Build(),
			expected: errs.ErrUnrecognizedEnumValue,
		},
		{
			name:     "BadThumbprint",
			patches:  helpers.NewPatchBuilder().Replace(helpers.JSONPointerBuilder("authentication"), map[string]interface{}{"type": "selfSigned", "x509Thumbprint": map[string]string{"primaryThumbprint": "xyz"}}).Build(),
			expected: errs.ErrInvalidThumbprint,
		},
		{
			name:     "FailedTest",
			patches:  helpers.NewPatchBuilder().Test(helpers.JSONPointerBuilder("status"), "Disabled").Build(),
			expected: errs.ErrInvalidArgument,
		},
		{
			name:     "NoPatches",
			patches:  nil,
			expected: errs.ErrInvalidArgument,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PatchDevice(ctx, PatchDeviceInput{Device: device, Patches: tc.patches})
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestExportImportDevices(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	first, err := models.NewExportImportDeviceWithAuthentication("device-1", models.AuthenticationTypeSas)
	require.NoError(t, err)
	first.ImportMode = models.ImportModeDelete
	second, err := models.NewExportImportDeviceWithAuthentication("device-2", models.AuthenticationTypeSelfSigned)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = svc.EncodeExportImportDevices(ctx, EncodeExportImportDevicesInput{Writer: &buf, Devices: []*models.ExportImportDevice{first, second}})
	require.NoError(t, err)

	decoded, err := svc.DecodeExportImportDevices(ctx, DecodeExportImportDevicesInput{Reader: &buf, DefaultImportMode: models.ImportModeCreateOrUpdate})
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, models.ImportModeDelete, decoded[0].ImportMode)
	assert.Equal(t, models.ImportModeCreateOrUpdate, decoded[1].ImportMode)
	assert.True(t, second.Authentication.Equal(decoded[1].Authentication))
}

func TestExportImportDevicesErrors(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	_, err := svc.DecodeExportImportDevices(ctx, DecodeExportImportDevicesInput{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = svc.DecodeExportImportDevices(ctx, DecodeExportImportDevicesInput{Reader: strings.NewReader(""), DefaultImportMode: "upsert"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.ErrorIs(t, err, errs.ErrUnrecognizedEnumValue)

	err = svc.EncodeExportImportDevices(ctx, EncodeExportImportDevicesInput{Writer: &bytes.Buffer{}, Devices: []*models.ExportImportDevice{{}}})
	assert.ErrorIs(t, err, errs.ErrExportImportIDRequired)

	err = svc.EncodeExportImportDevices(ctx, EncodeExportImportDevicesInput{Writer: &bytes.Buffer{}, Devices: []*models.ExportImportDevice{nil}})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDecodeExportImportDevicesPascalCaseDefaultMode(t *testing.T) {
	svc := newTestCodec()

	doc := `{"id":"device-1","authentication":{"type":"sas"}}` + "\n" +
		`{"id":"device-2","importMode":"Delete","authentication":{"type":"sas"}}` + "\n"

	decoded, err := svc.DecodeExportImportDevices(context.Background(), DecodeExportImportDevicesInput{Reader: strings.NewReader(doc), DefaultImportMode: "CreateOrUpdate"})
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, models.ImportModeCreateOrUpdate, decoded[0].ImportMode)
	assert.Equal(t, models.ImportModeDelete, decoded[1].ImportMode)
}

func TestRegistryCodecBackendWithoutConstructor(t *testing.T) {
	svc := &RegistryCodecBackend{logger: helpers.SetupLogger(config.None, "registry", "codec-test")}

	device, err := svc.DecodeDevice(context.Background(), DecodeDeviceInput{Payload: []byte(`{"deviceId":"device-1","authentication":{"type":"sas"}}`)})
	require.NoError(t, err)
	assert.Equal(t, "device-1", device.DeviceID)

	_, err = svc.DecodeDevice(context.Background(), DecodeDeviceInput{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestRegistryCodecServiceConcurrentUse(t *testing.T) {
	doc := []byte(`{"deviceId":"device-1","authentication":{"type":"selfSigned"}}`)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := newTestCodec()
			device, err := svc.DecodeDevice(context.Background(), DecodeDeviceInput{Payload: doc})
			assert.NoError(t, err)
			if device != nil {
				assert.Equal(t, "device-1", device.DeviceID)
			}
		}()
	}
	wg.Wait()
}

func TestJobProperties(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	job, err := svc.DecodeJobProperties(ctx, DecodeJobPropertiesInput{Payload: []byte(`{"jobId":"job-1","type":"export","status":"failed","failureReason":"quota","progress":12}`)})
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID())
	assert.Equal(t, models.JobTypeExport, job.Type)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Equal(t, 12, job.Progress())

	encoded, err := svc.EncodeJobProperties(ctx, EncodeJobPropertiesInput{Job: job})
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"type":"EXPORT"`)
	assert.Contains(t, string(encoded), `"status":"FAILED"`)

	_, err = svc.EncodeJobProperties(ctx, EncodeJobPropertiesInput{Job: models.NewJobProperties()})
	assert.ErrorIs(t, err, errs.ErrJobIDRequired)

	_, err = svc.DecodeJobProperties(ctx, DecodeJobPropertiesInput{Payload: []byte(`{"type":"export"}`)})
	assert.ErrorIs(t, err, errs.ErrJobIDRequired)
}

func TestRegistryStatistics(t *testing.T) {
	svc := newTestCodec()
	ctx := context.Background()

	stats, err := svc.DecodeRegistryStatistics(ctx, DecodeRegistryStatisticsInput{Payload: []byte(`{"totalDeviceCount":2,"enableDeviceCount":2,"disabledDeviceCount":0}`)})
	require.NoError(t, err)
	assert.Equal(t, models.RegistryStatistics{TotalDeviceCount: 2, EnabledDeviceCount: 2}, *stats)

	encoded, err := svc.EncodeRegistryStatistics(ctx, EncodeRegistryStatisticsInput{Statistics: stats})
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalDeviceCount":2,"enableDeviceCount":2,"disabledDeviceCount":0}`, string(encoded))

	inconsistent, err := svc.DecodeRegistryStatistics(ctx, DecodeRegistryStatisticsInput{Payload: []byte(`{"totalDeviceCount":5,"enableDeviceCount":1}`)})
	require.NoError(t, err)
	assert.False(t, inconsistent.Consistent())

	_, err = svc.EncodeRegistryStatistics(ctx, EncodeRegistryStatisticsInput{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
