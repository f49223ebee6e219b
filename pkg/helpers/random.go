package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	thumbprintBytes   = 20
	symmetricKeyBytes = 32
)

// GenerateThumbprintValue returns 40 random upper-case hex characters.
func GenerateThumbprintValue() (string, error) {
	buf := make([]byte, thumbprintBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate thumbprint: %w", err)
	}

	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// GenerateSymmetricKeyValue returns the base64 encoding of 32 random bytes.
func GenerateSymmetricKeyValue() (string, error) {
	buf := make([]byte, symmetricKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate symmetric key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// GenerateDigits returns n random decimal digits. Leading zeros are kept.
func GenerateDigits(n int) (string, error) {
	var sb strings.Builder
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("could not generate digits: %w", err)
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}

	return sb.String(), nil
}
