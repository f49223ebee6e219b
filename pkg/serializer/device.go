package serializer

import "github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"

type DeviceParser struct {
	DeviceID                   string                `json:"deviceId" validate:"required"`
	ETag                       string                `json:"etag"`
	GenerationID               string                `json:"generationId"`
	Status                     string                `json:"status"`
	StatusReason               string                `json:"statusReason"`
	StatusUpdatedTime          string                `json:"statusUpdatedTime"`
	ConnectionState            string                `json:"connectionState"`
	ConnectionStateUpdatedTime string                `json:"connectionStateUpdatedTime"`
	LastActivityTime           string                `json:"lastActivityTime"`
	CloudToDeviceMessageCount  int64                 `json:"cloudToDeviceMessageCount" validate:"gte=0"`
	Authentication             *AuthenticationParser `json:"authentication" validate:"required"`
}

func (p *DeviceParser) Validate() error {
	return validateParser(p)
}

func (p *DeviceParser) ToJSON() ([]byte, error) {
	return encodeJSON(p)
}

// NewDeviceParserFromJSON decodes and validates a device document. The status label
// gets its first letter capitalized and credentials not matching the authentication
// type are dropped.
func NewDeviceParserFromJSON(data []byte) (*DeviceParser, error) {
	var parser DeviceParser
	if err := decodeJSON(data, &parser); err != nil {
		return nil, err
	}

	if err := parser.Validate(); err != nil {
		return nil, errs.MalformedPayload(err)
	}

	parser.Status = capitalizeFirst(parser.Status)
	parser.Authentication.normalize()
	return &parser, nil
}
