package models

import (
	"unicode"
	"unicode/utf8"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

type ImportMode string

const (
	ImportModeCreateOrUpdate            ImportMode = "createOrUpdate"
	ImportModeCreate                    ImportMode = "create"
	ImportModeUpdate                    ImportMode = "update"
	ImportModeUpdateIfMatchETag         ImportMode = "updateIfMatchETag"
	ImportModeCreateOrUpdateIfMatchETag ImportMode = "createOrUpdateIfMatchETag"
	ImportModeDelete                    ImportMode = "delete"
	ImportModeDeleteIfMatchETag         ImportMode = "deleteIfMatchETag"
)

var importModes = map[string]ImportMode{
	string(ImportModeCreateOrUpdate):            ImportModeCreateOrUpdate,
	string(ImportModeCreate):                    ImportModeCreate,
	string(ImportModeUpdate):                    ImportModeUpdate,
	string(ImportModeUpdateIfMatchETag):         ImportModeUpdateIfMatchETag,
	string(ImportModeCreateOrUpdateIfMatchETag): ImportModeCreateOrUpdateIfMatchETag,
	string(ImportModeDelete):                    ImportModeDelete,
	string(ImportModeDeleteIfMatchETag):         ImportModeDeleteIfMatchETag,
}

// ParseImportMode accepts the camelCase labels and their PascalCase enum names
// ("CreateOrUpdate"). Any other casing is rejected.
func ParseImportMode(value string) (ImportMode, error) {
	if mode, ok := importModes[value]; ok {
		return mode, nil
	}

	r, size := utf8.DecodeRuneInString(value)
	if unicode.IsUpper(r) {
		if mode, ok := importModes[string(unicode.ToLower(r))+value[size:]]; ok {
			return mode, nil
		}
	}

	return "", errs.UnrecognizedEnumValue("ImportMode", value)
}

const exportImportDeviceIDPrefix = "exportImportDevice_"

// ExportImportDevice is one record of a bulk import or export job. ImportMode and
// Status are optional; the empty string means unset.
type ExportImportDevice struct {
	ID             string
	ETag           string
	ImportMode     ImportMode
	Status         DeviceStatus
	StatusReason   string
	Authentication Authentication
}

// NewExportImportDevice creates a sas record with a random "exportImportDevice_" id.
func NewExportImportDevice() (*ExportImportDevice, error) {
	digits, err := helpers.GenerateDigits(10)
	if err != nil {
		return nil, err
	}

	return NewExportImportDeviceWithAuthentication(exportImportDeviceIDPrefix+digits, AuthenticationTypeSas)
}

func NewExportImportDeviceWithAuthentication(id string, authType AuthenticationType) (*ExportImportDevice, error) {
	if id == "" {
		return nil, errs.InvalidArgument(errs.ErrExportImportIDRequired)
	}

	auth, err := NewAuthentication(authType)
	if err != nil {
		return nil, err
	}

	return &ExportImportDevice{
		ID:             id,
		Authentication: *auth,
	}, nil
}

// ExportImportDeviceFromDevice copies the fields a bulk record shares with a device.
func ExportImportDeviceFromDevice(device *Device, mode ImportMode) *ExportImportDevice {
	return &ExportImportDevice{
		ID:             device.DeviceID,
		ETag:           device.ETag,
		ImportMode:     mode,
		Status:         device.Status,
		StatusReason:   device.StatusReason,
		Authentication: device.Authentication,
	}
}

func (d *ExportImportDevice) ToParser() *serializer.ExportImportDeviceParser {
	return &serializer.ExportImportDeviceParser{
		ID:             d.ID,
		ETag:           d.ETag,
		ImportMode:     string(d.ImportMode),
		Status:         string(d.Status),
		StatusReason:   d.StatusReason,
		Authentication: d.Authentication.ToParser(),
	}
}

func ExportImportDeviceFromParser(parser *serializer.ExportImportDeviceParser) (*ExportImportDevice, error) {
	if parser == nil {
		return nil, errs.InvalidArgument(errs.ErrExportImportIDRequired)
	}

	if err := parser.Validate(); err != nil {
		return nil, err
	}

	auth, err := AuthenticationFromParser(parser.Authentication)
	if err != nil {
		return nil, err
	}

	device := &ExportImportDevice{
		ID:             parser.ID,
		ETag:           parser.ETag,
		StatusReason:   parser.StatusReason,
		Authentication: *auth,
	}

	if parser.ImportMode != "" {
		if device.ImportMode, err = ParseImportMode(parser.ImportMode); err != nil {
			return nil, err
		}
	}

	if parser.Status != "" {
		if device.Status, err = ParseDeviceStatus(parser.Status); err != nil {
			return nil, err
		}
	}

	return device, nil
}

func (d ExportImportDevice) MarshalJSON() ([]byte, error) {
	return d.ToParser().ToJSON()
}

func (d *ExportImportDevice) UnmarshalJSON(data []byte) error {
	parser, err := serializer.NewExportImportDeviceParserFromJSON(data)
	if err != nil {
		return err
	}

	device, err := ExportImportDeviceFromParser(parser)
	if err != nil {
		return err
	}

	*d = *device
	return nil
}
