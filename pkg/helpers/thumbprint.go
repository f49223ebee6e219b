package helpers

import (
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"strings"
)

// X509Thumbprint is the registry thumbprint of a certificate: the SHA-1 of its
// DER encoding as 40 upper-case hex characters.
func X509Thumbprint(cert *x509.Certificate) string {
	fingerprint := sha1.Sum(cert.Raw)
	return strings.ToUpper(hex.EncodeToString(fingerprint[:]))
}
