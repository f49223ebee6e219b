package serializer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
)

const maxBulkLineSize = 1024 * 1024

// EncodeExportImportDevices writes one JSON document per line, the layout used by
// registry bulk import and export blobs.
func EncodeExportImportDevices(w io.Writer, parsers []*ExportImportDeviceParser) error {
	bw := bufio.NewWriter(w)
	for i, parser := range parsers {
		line, err := parser.ToJSON()
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}

		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	return bw.Flush()
}

// ScanExportImportDevices reads newline-delimited records and hands each one to fn
// together with its line number in the source. Blank lines are skipped. Decoding
// stops at the first error, from the reader or from fn, and the error carries the
// line number.
func ScanExportImportDevices(r io.Reader, fn func(line int, parser *ExportImportDeviceParser) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBulkLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		parser, err := NewExportImportDeviceParserFromJSON(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if err := fn(lineNumber, parser); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return errs.MalformedPayload(fmt.Errorf("line %d: %w", lineNumber+1, err))
	}

	return nil
}

func DecodeExportImportDevices(r io.Reader) ([]*ExportImportDeviceParser, error) {
	parsers := []*ExportImportDeviceParser{}
	err := ScanExportImportDevices(r, func(_ int, parser *ExportImportDeviceParser) error {
		parsers = append(parsers, parser)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parsers, nil
}
