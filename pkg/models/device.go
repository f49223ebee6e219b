package models

import (
	"time"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

type DeviceStatus string

const (
	DeviceEnabled  DeviceStatus = "Enabled"
	DeviceDisabled DeviceStatus = "Disabled"
)

func ParseDeviceStatus(value string) (DeviceStatus, error) {
	switch DeviceStatus(value) {
	case DeviceEnabled, DeviceDisabled:
		return DeviceStatus(value), nil
	default:
		return "", errs.UnrecognizedEnumValue("DeviceStatus", value)
	}
}

type DeviceConnectionState string

const (
	DeviceConnected    DeviceConnectionState = "Connected"
	DeviceDisconnected DeviceConnectionState = "Disconnected"
)

func ParseDeviceConnectionState(value string) (DeviceConnectionState, error) {
	switch DeviceConnectionState(value) {
	case DeviceConnected, DeviceDisconnected:
		return DeviceConnectionState(value), nil
	default:
		return "", errs.UnrecognizedEnumValue("DeviceConnectionState", value)
	}
}

type Device struct {
	DeviceID                   string
	ETag                       string
	GenerationID               string
	Status                     DeviceStatus
	StatusReason               string
	StatusUpdatedTime          string
	ConnectionState            DeviceConnectionState
	ConnectionStateUpdatedTime string
	LastActivityTime           string
	CloudToDeviceMessageCount  int64
	Authentication             Authentication

	// ForceUpdate asks the registry to skip the etag check. It never goes on the wire.
	ForceUpdate bool
}

func newDevice(deviceID string, status DeviceStatus, auth *Authentication) *Device {
	return &Device{
		DeviceID:                   deviceID,
		Status:                     status,
		StatusUpdatedTime:          helpers.RegistryUnsetTime,
		ConnectionState:            DeviceDisconnected,
		ConnectionStateUpdatedTime: helpers.RegistryUnsetTime,
		LastActivityTime:           helpers.RegistryUnsetTime,
		Authentication:             *auth,
	}
}

// NewDeviceFromID creates a sas device. A nil key is replaced by a generated one
// and an empty status defaults to Enabled.
func NewDeviceFromID(deviceID string, status DeviceStatus, key *SymmetricKey) (*Device, error) {
	if deviceID == "" {
		return nil, errs.InvalidArgument(errs.ErrDeviceIDRequired)
	}

	if status == "" {
		status = DeviceEnabled
	} else if _, err := ParseDeviceStatus(string(status)); err != nil {
		return nil, err
	}

	if key == nil {
		generated, err := GenerateSymmetricKey()
		if err != nil {
			return nil, err
		}
		key = &generated
	}

	auth, err := NewSasAuthentication(key)
	if err != nil {
		return nil, err
	}

	return newDevice(deviceID, status, auth), nil
}

// NewDevice creates an enabled device whose credential is generated for authType.
func NewDevice(deviceID string, authType AuthenticationType) (*Device, error) {
	if deviceID == "" {
		return nil, errs.InvalidArgument(errs.ErrDeviceIDRequired)
	}

	auth, err := NewAuthentication(authType)
	if err != nil {
		return nil, err
	}

	return newDevice(deviceID, DeviceEnabled, auth), nil
}

func (d *Device) AuthenticationType() AuthenticationType {
	return d.Authentication.Type()
}

func (d *Device) SetAuthenticationType(t AuthenticationType) error {
	return d.Authentication.SetAuthenticationType(t)
}

func (d *Device) SymmetricKey() *SymmetricKey {
	return d.Authentication.SymmetricKey()
}

func (d *Device) SetSymmetricKey(key *SymmetricKey) error {
	return d.Authentication.SetSymmetricKey(key)
}

func (d *Device) PrimaryKey() string {
	if key := d.SymmetricKey(); key != nil {
		return key.PrimaryKey
	}
	return ""
}

func (d *Device) SecondaryKey() string {
	if key := d.SymmetricKey(); key != nil {
		return key.SecondaryKey
	}
	return ""
}

// SetThumbprint switches the device to selfSigned with both halves given.
func (d *Device) SetThumbprint(primary, secondary string) error {
	thumbprint, err := NewX509Thumbprint(primary, secondary)
	if err != nil {
		return err
	}
	return d.Authentication.SetThumbprint(thumbprint)
}

func (d *Device) PrimaryThumbprint() string {
	return d.Authentication.PrimaryThumbprint()
}

func (d *Device) SecondaryThumbprint() string {
	return d.Authentication.SecondaryThumbprint()
}

func (d *Device) SetForceUpdate(forceUpdate bool) {
	d.ForceUpdate = forceUpdate
}

func (d *Device) StatusUpdatedAt() (time.Time, error) {
	return helpers.ParseRegistryTime(d.StatusUpdatedTime)
}

func (d *Device) ConnectionStateUpdatedAt() (time.Time, error) {
	return helpers.ParseRegistryTime(d.ConnectionStateUpdatedTime)
}

func (d *Device) LastActivityAt() (time.Time, error) {
	return helpers.ParseRegistryTime(d.LastActivityTime)
}

func (d *Device) ToParser() *serializer.DeviceParser {
	return &serializer.DeviceParser{
		DeviceID:                   d.DeviceID,
		ETag:                       d.ETag,
		GenerationID:               d.GenerationID,
		Status:                     string(d.Status),
		StatusReason:               d.StatusReason,
		StatusUpdatedTime:          d.StatusUpdatedTime,
		ConnectionState:            string(d.ConnectionState),
		ConnectionStateUpdatedTime: d.ConnectionStateUpdatedTime,
		LastActivityTime:           d.LastActivityTime,
		CloudToDeviceMessageCount:  d.CloudToDeviceMessageCount,
		Authentication:             d.Authentication.ToParser(),
	}
}

// DeviceFromParser validates a wire device and converts it. Status and connection
// state labels must match exactly; absent ones take the factory defaults.
func DeviceFromParser(parser *serializer.DeviceParser) (*Device, error) {
	if parser == nil {
		return nil, errs.InvalidArgument(errs.ErrDeviceIDRequired)
	}

	if err := parser.Validate(); err != nil {
		return nil, err
	}

	auth, err := AuthenticationFromParser(parser.Authentication)
	if err != nil {
		return nil, err
	}

	status := DeviceEnabled
	if parser.Status != "" {
		if status, err = ParseDeviceStatus(parser.Status); err != nil {
			return nil, err
		}
	}

	connectionState := DeviceDisconnected
	if parser.ConnectionState != "" {
		if connectionState, err = ParseDeviceConnectionState(parser.ConnectionState); err != nil {
			return nil, err
		}
	}

	return &Device{
		DeviceID:                   parser.DeviceID,
		ETag:                       parser.ETag,
		GenerationID:               parser.GenerationID,
		Status:                     status,
		StatusReason:               parser.StatusReason,
		StatusUpdatedTime:          parser.StatusUpdatedTime,
		ConnectionState:            connectionState,
		ConnectionStateUpdatedTime: parser.ConnectionStateUpdatedTime,
		LastActivityTime:           parser.LastActivityTime,
		CloudToDeviceMessageCount:  parser.CloudToDeviceMessageCount,
		Authentication:             *auth,
	}, nil
}

func (d Device) MarshalJSON() ([]byte, error) {
	return d.ToParser().ToJSON()
}

func (d *Device) UnmarshalJSON(data []byte) error {
	parser, err := serializer.NewDeviceParserFromJSON(data)
	if err != nil {
		return err
	}

	device, err := DeviceFromParser(parser)
	if err != nil {
		return err
	}

	*d = *device
	return nil
}
