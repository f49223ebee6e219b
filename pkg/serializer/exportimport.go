package serializer

import "github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"

type ExportImportDeviceParser struct {
	ID             string                `json:"id" validate:"required"`
	ETag           string                `json:"eTag"`
	ImportMode     string                `json:"importMode,omitempty"`
	Status         string                `json:"status,omitempty"`
	StatusReason   string                `json:"statusReason"`
	Authentication *AuthenticationParser `json:"authentication" validate:"required"`
}

func (p *ExportImportDeviceParser) Validate() error {
	return validateParser(p)
}

func (p *ExportImportDeviceParser) ToJSON() ([]byte, error) {
	return encodeJSON(p)
}

func NewExportImportDeviceParserFromJSON(data []byte) (*ExportImportDeviceParser, error) {
	var parser ExportImportDeviceParser
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
