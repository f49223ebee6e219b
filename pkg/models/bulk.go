package models

import (
	"io"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

// EncodeBulk writes devices in the newline-delimited layout of bulk job blobs.
func EncodeBulk(w io.Writer, devices []*ExportImportDevice) error {
	parsers := make([]*serializer.ExportImportDeviceParser, 0, len(devices))
	for _, device := range devices {
		parsers = append(parsers, device.ToParser())
	}

	return serializer.EncodeExportImportDevices(w, parsers)
}

// DecodeBulk reads bulk records. Errors name the offending line of the input.
func DecodeBulk(r io.Reader) ([]*ExportImportDevice, error) {
	devices := []*ExportImportDevice{}
	err := serializer.ScanExportImportDevices(r, func(_ int, parser *serializer.ExportImportDeviceParser) error {
		device, err := ExportImportDeviceFromParser(parser)
		if err != nil {
			return err
		}
		devices = append(devices, device)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}
