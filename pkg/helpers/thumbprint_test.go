package helpers

import (
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestX509Thumbprint(t *testing.T) {
	testcases := []struct {
		name     string
		raw      []byte
		expected string
	}{
		{name: "Empty", raw: nil, expected: "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709"},
		{name: "FourBytes", raw: []byte{0x01, 0x02, 0x03, 0x04}, expected: "12DADA1FFF4D4787ADE3333147202C3B443E376F"},
		{name: "EightBytes", raw: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, expected: "DD5783BCF1E9002BC00AD5B83A95ED6E4EBB4AD5"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := X509Thumbprint(&x509.Certificate{Raw: tc.raw})
			assert.Equal(t, tc.expected, got)
			assert.Regexp(t, thumbprintPattern, got)
		})
	}
}

func TestReadCertificateFromFile(t *testing.T) {
	cert, key, err := GenerateSelfSignedDeviceCertificate("device-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "device-1", cert.Subject.CommonName)

	dir := t.TempDir()
	certPath := filepath.Join(dir, "device.crt")
	require.NoError(t, os.WriteFile(certPath, CertificateToPEM(cert), 0600))

	read, err := ReadCertificateFromFile(certPath)
	require.NoError(t, err)
	assert.Equal(t, X509Thumbprint(cert), X509Thumbprint(read))

	keyPEM, err := PrivateKeyToPEM(key)
	require.NoError(t, err)
	_, err = ParseCertificate(keyPEM)
	assert.Error(t, err)
}

func TestReadCertificateFromFileErrors(t *testing.T) {
	_, err := ReadCertificateFromFile("")
	assert.Error(t, err)

	_, err = ReadCertificateFromFile("testdata/does-not-exist.crt")
	assert.Error(t, err)

	_, err = ParseCertificate([]byte("not a pem"))
	assert.Error(t, err)
}
