package models

import "github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"

// SymmetricKey is the shared-access key pair of a sas device. Values are opaque.
type SymmetricKey struct {
	PrimaryKey   string
	SecondaryKey string
}

func (SymmetricKey) authenticationType() AuthenticationType {
	return AuthenticationTypeSas
}

func NewSymmetricKey(primary, secondary string) SymmetricKey {
	return SymmetricKey{PrimaryKey: primary, SecondaryKey: secondary}
}

func GenerateSymmetricKey() (SymmetricKey, error) {
	primary, err := helpers.GenerateSymmetricKeyValue()
	if err != nil {
		return SymmetricKey{}, err
	}

	secondary, err := helpers.GenerateSymmetricKeyValue()
	if err != nil {
		return SymmetricKey{}, err
	}

	return SymmetricKey{PrimaryKey: primary, SecondaryKey: secondary}, nil
}

func (k SymmetricKey) Equal(other SymmetricKey) bool {
	return k == other
}
