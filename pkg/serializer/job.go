package serializer

import (
	"time"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
)

type JobPropertiesParser struct {
	JobID                  string     `json:"jobId" validate:"required"`
	StartTimeUTC           *time.Time `json:"startTimeUtc,omitempty"`
	EndTimeUTC             *time.Time `json:"endTimeUtc,omitempty"`
	Type                   string     `json:"type"`
	Status                 string     `json:"status"`
	Progress               int        `json:"progress" validate:"gte=0,lte=100"`
	InputBlobContainerURI  string     `json:"inputBlobContainerUri"`
	OutputBlobContainerURI string     `json:"outputBlobContainerUri"`
	ExcludeKeysInExport    bool       `json:"excludeKeysInExport"`
	FailureReason          string     `json:"failureReason"`
}

func (p *JobPropertiesParser) Validate() error {
	return validateParser(p)
}

func (p *JobPropertiesParser) ToJSON() ([]byte, error) {
	return encodeJSON(p)
}

func NewJobPropertiesParserFromJSON(data []byte) (*JobPropertiesParser, error) {
	var parser JobPropertiesParser
	if err := decodeJSON(data, &parser); err != nil {
		return nil, err
	}

	if err := parser.Validate(); err != nil {
		return nil, errs.MalformedPayload(err)
	}

	return &parser, nil
}
