package helpers

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

func ReadCertificateFromFile(filePath string) (*x509.Certificate, error) {
	if filePath == "" {
		return nil, fmt.Errorf("cannot open empty filepath")
	}

	certFileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return ParseCertificate(certFileBytes)
}

func ParseCertificate(cert []byte) (*x509.Certificate, error) {
	certDERBlock, _ := pem.Decode(cert)
	if certDERBlock == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	if certDERBlock.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("unexpected PEM block type '%s'", certDERBlock.Type)
	}

	return x509.ParseCertificate(certDERBlock.Bytes)
}

func CertificateToPEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}
