package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
)

func decodeJSON(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errs.MalformedPayload(errs.ErrEmptyPayload)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errs.MalformedPayload(fmt.Errorf("%w: %w", errs.ErrInvalidJSON, err))
	}

	return nil
}

func encodeJSON(source any) ([]byte, error) {
	b, err := json.Marshal(source)
	if err != nil {
		return nil, fmt.Errorf("could not encode json: %w", err)
	}

	return b, nil
}
