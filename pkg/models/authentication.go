package models

import (
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

type AuthenticationType string

const (
	AuthenticationTypeSas                  AuthenticationType = "sas"
	AuthenticationTypeSelfSigned           AuthenticationType = "selfSigned"
	AuthenticationTypeCertificateAuthority AuthenticationType = "certificateAuthority"
)

var authenticationTypes = map[string]AuthenticationType{
	string(AuthenticationTypeSas):                  AuthenticationTypeSas,
	string(AuthenticationTypeSelfSigned):           AuthenticationTypeSelfSigned,
	string(AuthenticationTypeCertificateAuthority): AuthenticationTypeCertificateAuthority,
}

func ParseAuthenticationType(value string) (AuthenticationType, error) {
	t, ok := authenticationTypes[value]
	if !ok {
		return "", errs.UnrecognizedEnumValue("AuthenticationType", value)
	}
	return t, nil
}

func (t AuthenticationType) MarshalText() ([]byte, error) {
	if _, err := ParseAuthenticationType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *AuthenticationType) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthenticationType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// credential is implemented by SymmetricKey and X509Thumbprint only.
// A nil credential stands for certificate-authority authentication.
type credential interface {
	authenticationType() AuthenticationType
}

// Authentication describes how a device proves its identity: a symmetric key (sas),
// a pair of self-signed certificate thumbprints (selfSigned) or a CA-signed certificate
// (certificateAuthority). The zero value is certificateAuthority.
type Authentication struct {
	credential credential
}

func NewSasAuthentication(key *SymmetricKey) (*Authentication, error) {
	if key == nil {
		return nil, errs.InvalidArgument(errs.ErrSymmetricKeyRequired)
	}
	return &Authentication{credential: *key}, nil
}

func NewSelfSignedAuthentication(primary, secondary string) (*Authentication, error) {
	thumbprint, err := NewX509Thumbprint(primary, secondary)
	if err != nil {
		return nil, err
	}
	return &Authentication{credential: *thumbprint}, nil
}

func NewCertificateAuthorityAuthentication() *Authentication {
	return &Authentication{}
}

// NewAuthentication builds a descriptor of type t, generating the credential it needs.
func NewAuthentication(t AuthenticationType) (*Authentication, error) {
	cred, err := generateCredential(t)
	if err != nil {
		return nil, err
	}
	return &Authentication{credential: cred}, nil
}

func generateCredential(t AuthenticationType) (credential, error) {
	if t == "" {
		return nil, errs.InvalidArgument(errs.ErrAuthenticationTypeRequired)
	}

	switch t {
	case AuthenticationTypeSas:
		key, err := GenerateSymmetricKey()
		if err != nil {
			return nil, err
		}
		return key, nil
	case AuthenticationTypeSelfSigned:
		thumbprint, err := GenerateX509Thumbprint()
		if err != nil {
			return nil, err
		}
		return thumbprint, nil
	case AuthenticationTypeCertificateAuthority:
		return nil, nil
	default:
		return nil, errs.InvalidArgument(errs.UnrecognizedEnumValue("AuthenticationType", string(t)))
	}
}

func (a Authentication) Type() AuthenticationType {
	if a.credential == nil {
		return AuthenticationTypeCertificateAuthority
	}
	return a.credential.authenticationType()
}

// SymmetricKey returns a copy of the key, or nil unless the type is sas.
func (a Authentication) SymmetricKey() *SymmetricKey {
	key, ok := a.credential.(SymmetricKey)
	if !ok {
		return nil
	}
	return &key
}

// Thumbprint returns a copy of the thumbprint, or nil unless the type is selfSigned.
func (a Authentication) Thumbprint() *X509Thumbprint {
	thumbprint, ok := a.credential.(X509Thumbprint)
	if !ok {
		return nil
	}
	return &thumbprint
}

func (a Authentication) PrimaryThumbprint() string {
	if thumbprint := a.Thumbprint(); thumbprint != nil {
		return thumbprint.PrimaryThumbprint()
	}
	return ""
}

func (a Authentication) SecondaryThumbprint() string {
	if thumbprint := a.Thumbprint(); thumbprint != nil {
		return thumbprint.SecondaryThumbprint()
	}
	return ""
}

// SetSymmetricKey switches the descriptor to sas.
func (a *Authentication) SetSymmetricKey(key *SymmetricKey) error {
	if key == nil {
		return errs.InvalidArgument(errs.ErrSymmetricKeyRequired)
	}
	a.credential = *key
	return nil
}

// SetThumbprint switches the descriptor to selfSigned.
func (a *Authentication) SetThumbprint(thumbprint *X509Thumbprint) error {
	if thumbprint == nil {
		return errs.InvalidArgument(errs.ErrInvalidThumbprint)
	}
	a.credential = *thumbprint
	return nil
}

// SetPrimaryThumbprint switches the descriptor to selfSigned. When there was no
// thumbprint before, the secondary half is generated.
func (a *Authentication) SetPrimaryThumbprint(value string) error {
	return a.updateThumbprint(func(t *X509Thumbprint) error {
		return t.SetPrimaryThumbprint(value)
	})
}

// SetSecondaryThumbprint switches the descriptor to selfSigned. When there was no
// thumbprint before, the primary half is generated.
func (a *Authentication) SetSecondaryThumbprint(value string) error {
	return a.updateThumbprint(func(t *X509Thumbprint) error {
		return t.SetSecondaryThumbprint(value)
	})
}

func (a *Authentication) updateThumbprint(update func(t *X509Thumbprint) error) error {
	thumbprint := a.Thumbprint()
	if thumbprint == nil {
		generated, err := GenerateX509Thumbprint()
		if err != nil {
			return err
		}
		thumbprint = &generated
	}

	if err := update(thumbprint); err != nil {
		return err
	}

	a.credential = *thumbprint
	return nil
}

// SetAuthenticationType regenerates the credential when t differs from the current type.
func (a *Authentication) SetAuthenticationType(t AuthenticationType) error {
	if t == a.Type() {
		return nil
	}

	cred, err := generateCredential(t)
	if err != nil {
		return err
	}

	a.credential = cred
	return nil
}

func (a Authentication) Equal(other Authentication) bool {
	return a.credential == other.credential
}

func (a Authentication) ToParser() *serializer.AuthenticationParser {
	parser := &serializer.AuthenticationParser{
		Type: serializer.AuthenticationTypeParser(a.Type()),
	}

	switch cred := a.credential.(type) {
	case SymmetricKey:
		parser.SymmetricKey = &serializer.SymmetricKeyParser{
			PrimaryKey:   cred.PrimaryKey,
			SecondaryKey: cred.SecondaryKey,
		}
	case X509Thumbprint:
		parser.Thumbprint = &serializer.X509ThumbprintParser{
			PrimaryThumbprint:   cred.primary,
			SecondaryThumbprint: cred.secondary,
		}
	}

	return parser
}

// AuthenticationFromParser rebuilds a descriptor from its wire form. A sas parser
// without a key yields an empty key; thumbprint halves missing from a selfSigned
// parser are generated.
func AuthenticationFromParser(parser *serializer.AuthenticationParser) (*Authentication, error) {
	if parser == nil {
		return nil, errs.InvalidArgument(errs.ErrAuthenticationRequired)
	}

	if parser.Type == "" {
		return nil, errs.InvalidArgument(errs.ErrAuthenticationTypeRequired)
	}

	t, err := ParseAuthenticationType(string(parser.Type))
	if err != nil {
		return nil, err
	}

	switch t {
	case AuthenticationTypeSas:
		key := SymmetricKey{}
		if parser.SymmetricKey != nil {
			key = NewSymmetricKey(parser.SymmetricKey.PrimaryKey, parser.SymmetricKey.SecondaryKey)
		}
		return &Authentication{credential: key}, nil
	case AuthenticationTypeSelfSigned:
		thumbprint, err := thumbprintFromParser(parser.Thumbprint)
		if err != nil {
			return nil, err
		}
		return &Authentication{credential: thumbprint}, nil
	default:
		return NewCertificateAuthorityAuthentication(), nil
	}
}

func thumbprintFromParser(parser *serializer.X509ThumbprintParser) (X509Thumbprint, error) {
	thumbprint, err := GenerateX509Thumbprint()
	if err != nil {
		return X509Thumbprint{}, err
	}

	if parser == nil {
		return thumbprint, nil
	}

	if parser.PrimaryThumbprint != "" {
		if err := thumbprint.SetPrimaryThumbprint(parser.PrimaryThumbprint); err != nil {
			return X509Thumbprint{}, err
		}
	}

	if parser.SecondaryThumbprint != "" {
		if err := thumbprint.SetSecondaryThumbprint(parser.SecondaryThumbprint); err != nil {
			return X509Thumbprint{}, err
		}
	}

	return thumbprint, nil
}

func (a Authentication) MarshalJSON() ([]byte, error) {
	return a.ToParser().ToJSON()
}

func (a *Authentication) UnmarshalJSON(data []byte) error {
	parser, err := serializer.NewAuthenticationParserFromJSON(data)
	if err != nil {
		return err
	}

	auth, err := AuthenticationFromParser(parser)
	if err != nil {
		return err
	}

	*a = *auth
	return nil
}
