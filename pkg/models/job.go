package models

import (
	"time"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

type JobType string

const (
	JobTypeUnknown JobType = "UNKNOWN"
	JobTypeExport  JobType = "EXPORT"
	JobTypeImport  JobType = "IMPORT"
)

// ParseJobType ignores case. The empty label maps to JobTypeUnknown.
func ParseJobType(value string) (JobType, error) {
	if value == "" {
		return JobTypeUnknown, nil
	}

	switch t := JobType(helpers.UpperLabel(value)); t {
	case JobTypeUnknown, JobTypeExport, JobTypeImport:
		return t, nil
	default:
		return "", errs.UnrecognizedEnumValue("JobType", value)
	}
}

type JobStatus string

const (
	JobStatusUnknown   JobStatus = "UNKNOWN"
	JobStatusEnqueued  JobStatus = "ENQUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
	JobStatusCancelled JobStatus = "CANCELLED"
)

// ParseJobStatus ignores case. The empty label maps to JobStatusUnknown.
func ParseJobStatus(value string) (JobStatus, error) {
	if value == "" {
		return JobStatusUnknown, nil
	}

	switch s := JobStatus(helpers.UpperLabel(value)); s {
	case JobStatusUnknown, JobStatusEnqueued, JobStatusRunning, JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return s, nil
	default:
		return "", errs.UnrecognizedEnumValue("JobStatus", value)
	}
}

// JobProperties describes a bulk import or export job. The job id and progress
// are only reachable through their setters, which enforce their ranges.
type JobProperties struct {
	jobID    string
	progress int

	StartTimeUTC           time.Time
	EndTimeUTC             time.Time
	Type                   JobType
	Status                 JobStatus
	InputBlobContainerURI  string
	OutputBlobContainerURI string
	ExcludeKeysInExport    bool
	FailureReason          string
}

func NewJobProperties() *JobProperties {
	return &JobProperties{
		Type:   JobTypeUnknown,
		Status: JobStatusUnknown,
	}
}

// NewExportJobProperties prepares an export job writing to outputURI.
func NewExportJobProperties(outputURI string, excludeKeys bool) *JobProperties {
	job := NewJobProperties()
	job.Type = JobTypeExport
	job.OutputBlobContainerURI = outputURI
	job.ExcludeKeysInExport = excludeKeys
	return job
}

// NewImportJobProperties prepares an import job reading from inputURI and reporting to outputURI.
func NewImportJobProperties(inputURI, outputURI string) *JobProperties {
	job := NewJobProperties()
	job.Type = JobTypeImport
	job.InputBlobContainerURI = inputURI
	job.OutputBlobContainerURI = outputURI
	return job
}

func (j *JobProperties) JobID() string {
	return j.jobID
}

func (j *JobProperties) SetJobID(jobID string) error {
	if jobID == "" {
		return errs.InvalidArgument(errs.ErrJobIDRequired)
	}
	j.jobID = jobID
	return nil
}

func (j *JobProperties) Progress() int {
	return j.progress
}

func (j *JobProperties) SetProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return errs.InvalidArgument(errs.ErrJobProgressOutOfRange)
	}
	j.progress = progress
	return nil
}

func (j *JobProperties) ToParser() *serializer.JobPropertiesParser {
	parser := &serializer.JobPropertiesParser{
		JobID:                  j.jobID,
		Type:                   string(j.Type),
		Status:                 string(j.Status),
		Progress:               j.progress,
		InputBlobContainerURI:  j.InputBlobContainerURI,
		OutputBlobContainerURI: j.OutputBlobContainerURI,
		ExcludeKeysInExport:    j.ExcludeKeysInExport,
		FailureReason:          j.FailureReason,
	}

	if !j.StartTimeUTC.IsZero() {
		start := j.StartTimeUTC
		parser.StartTimeUTC = &start
	}

	if !j.EndTimeUTC.IsZero() {
		end := j.EndTimeUTC
		parser.EndTimeUTC = &end
	}

	return parser
}

func JobPropertiesFromParser(parser *serializer.JobPropertiesParser) (*JobProperties, error) {
	if parser == nil {
		return nil, errs.InvalidArgument(errs.ErrJobIDRequired)
	}

	if err := parser.Validate(); err != nil {
		return nil, err
	}

	jobType, err := ParseJobType(parser.Type)
	if err != nil {
		return nil, err
	}

	jobStatus, err := ParseJobStatus(parser.Status)
	if err != nil {
		return nil, err
	}

	job := &JobProperties{
		jobID:                  parser.JobID,
		progress:               parser.Progress,
		Type:                   jobType,
		Status:                 jobStatus,
		InputBlobContainerURI:  parser.InputBlobContainerURI,
		OutputBlobContainerURI: parser.OutputBlobContainerURI,
		ExcludeKeysInExport:    parser.ExcludeKeysInExport,
		FailureReason:          parser.FailureReason,
	}

	if parser.StartTimeUTC != nil {
		job.StartTimeUTC = *parser.StartTimeUTC
	}

	if parser.EndTimeUTC != nil {
		job.EndTimeUTC = *parser.EndTimeUTC
	}

	return job, nil
}

func (j JobProperties) MarshalJSON() ([]byte, error) {
	return j.ToParser().ToJSON()
}

func (j *JobProperties) UnmarshalJSON(data []byte) error {
	parser, err := serializer.NewJobPropertiesParserFromJSON(data)
	if err != nil {
		return err
	}

	job, err := JobPropertiesFromParser(parser)
	if err != nil {
		return err
	}

	*j = *job
	return nil
}
