package models

import (
	"crypto/x509"
	"regexp"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
)

var thumbprintRegex = regexp.MustCompile(`^([A-Fa-f0-9]{2}){20}$`)

// X509Thumbprint holds the primary and secondary SHA-1 thumbprints of a self-signed
// device certificate pair. Both halves are always 40 hex characters.
type X509Thumbprint struct {
	primary   string
	secondary string
}

func (X509Thumbprint) authenticationType() AuthenticationType {
	return AuthenticationTypeSelfSigned
}

func validateThumbprint(value string) error {
	if !thumbprintRegex.MatchString(value) {
		return errs.InvalidArgument(errs.ErrInvalidThumbprint)
	}
	return nil
}

func NewX509Thumbprint(primary, secondary string) (*X509Thumbprint, error) {
	if err := validateThumbprint(primary); err != nil {
		return nil, err
	}

	if err := validateThumbprint(secondary); err != nil {
		return nil, err
	}

	return &X509Thumbprint{primary: primary, secondary: secondary}, nil
}

// NewX509ThumbprintFromCertificates derives both halves from the given certificates.
func NewX509ThumbprintFromCertificates(primary, secondary *x509.Certificate) (*X509Thumbprint, error) {
	if primary == nil || secondary == nil {
		return nil, errs.InvalidArgument(errs.ErrInvalidThumbprint)
	}

	return NewX509Thumbprint(helpers.X509Thumbprint(primary), helpers.X509Thumbprint(secondary))
}

func GenerateX509Thumbprint() (X509Thumbprint, error) {
	primary, err := helpers.GenerateThumbprintValue()
	if err != nil {
		return X509Thumbprint{}, err
	}

	secondary, err := helpers.GenerateThumbprintValue()
	if err != nil {
		return X509Thumbprint{}, err
	}

	return X509Thumbprint{primary: primary, secondary: secondary}, nil
}

func (t X509Thumbprint) PrimaryThumbprint() string {
	return t.primary
}

func (t X509Thumbprint) SecondaryThumbprint() string {
	return t.secondary
}

func (t *X509Thumbprint) SetPrimaryThumbprint(value string) error {
	if err := validateThumbprint(value); err != nil {
		return err
	}

	t.primary = value
	return nil
}

func (t *X509Thumbprint) SetSecondaryThumbprint(value string) error {
	if err := validateThumbprint(value); err != nil {
		return err
	}

	t.secondary = value
	return nil
}

func (t X509Thumbprint) Equal(other X509Thumbprint) bool {
	return t == other
}
