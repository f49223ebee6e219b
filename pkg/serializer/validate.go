package serializer

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
)

var parserValidate = validator.New()

// Keyed by struct namespace so fields with the same name on different parsers stay apart.
var fieldSentinels = map[string]error{
	"DeviceParser.DeviceID":                        errs.ErrDeviceIDRequired,
	"DeviceParser.Authentication":                  errs.ErrAuthenticationRequired,
	"DeviceParser.Authentication.Type":             errs.ErrAuthenticationTypeRequired,
	"ExportImportDeviceParser.ID":                  errs.ErrExportImportIDRequired,
	"ExportImportDeviceParser.Authentication":      errs.ErrAuthenticationRequired,
	"ExportImportDeviceParser.Authentication.Type": errs.ErrAuthenticationTypeRequired,
	"AuthenticationParser.Type":                    errs.ErrAuthenticationTypeRequired,
	"JobPropertiesParser.JobID":                    errs.ErrJobIDRequired,
	"JobPropertiesParser.Progress":                 errs.ErrJobProgressOutOfRange,
}

func validateParser(parser any) error {
	err := parserValidate.Struct(parser)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errs.InvalidArgument(err)
	}

	fieldErr := validationErrs[0]
	if sentinel, ok := fieldSentinels[fieldErr.StructNamespace()]; ok {
		return errs.InvalidArgument(sentinel)
	}

	return errs.InvalidArgument(fmt.Errorf("field '%s' failed on the '%s' rule", fieldErr.Namespace(), fieldErr.Tag()))
}
