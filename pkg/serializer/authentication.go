package serializer

import "github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"

type AuthenticationTypeParser string

const (
	AuthenticationTypeParserSas                  AuthenticationTypeParser = "sas"
	AuthenticationTypeParserSelfSigned           AuthenticationTypeParser = "selfSigned"
	AuthenticationTypeParserCertificateAuthority AuthenticationTypeParser = "certificateAuthority"
)

type SymmetricKeyParser struct {
	PrimaryKey   string `json:"primaryKey"`
	SecondaryKey string `json:"secondaryKey"`
}

type X509ThumbprintParser struct {
	PrimaryThumbprint   string `json:"primaryThumbprint"`
	SecondaryThumbprint string `json:"secondaryThumbprint"`
}

// AuthenticationParser carries at most the one credential matching Type.
type AuthenticationParser struct {
	Type         AuthenticationTypeParser `json:"type" validate:"required"`
	SymmetricKey *SymmetricKeyParser      `json:"symmetricKey,omitempty"`
	Thumbprint   *X509ThumbprintParser    `json:"x509Thumbprint,omitempty"`
}

// normalize drops the credentials that do not belong to the declared type.
func (p *AuthenticationParser) normalize() {
	switch p.Type {
	case AuthenticationTypeParserSas:
		p.Thumbprint = nil
	case AuthenticationTypeParserSelfSigned:
		p.SymmetricKey = nil
	case AuthenticationTypeParserCertificateAuthority:
		p.SymmetricKey = nil
		p.Thumbprint = nil
	}
}

func (p *AuthenticationParser) Validate() error {
	return validateParser(p)
}

func (p *AuthenticationParser) ToJSON() ([]byte, error) {
	return encodeJSON(p)
}

func NewAuthenticationParserFromJSON(data []byte) (*AuthenticationParser, error) {
	var parser AuthenticationParser
	if err := decodeJSON(data, &parser); err != nil {
		return nil, err
	}

	if err := parser.Validate(); err != nil {
		return nil, errs.MalformedPayload(err)
	}

	parser.normalize()
	return &parser, nil
}
