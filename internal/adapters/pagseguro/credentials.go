package pagseguro

import (
	"crypto/x509"
	"encoding/pem"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// LoadCredentials lê o certificado (.crt/.pem) e a chave privada (.key) do disco
func LoadCredentials(certPath, keyPath, clientID, clientSecret string) (Credentials, error) {
	cert, err := os.ReadFile(certPath)
	if err != nil {
		return Credentials{}, &ConfigurationError{Field: "certificate", Msg: "erro ao ler certificado", Cause: err}
	}
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return Credentials{}, &ConfigurationError{Field: "private_key", Msg: "erro ao ler chave privada", Cause: err}
	}

	return Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Certificate:  cert,
		PrivateKey:   key,
	}, nil
}

// LoadPKCS12Credentials lê um certificado .p12 e o converte para PEM
func LoadPKCS12Credentials(p12Path, password, clientID, clientSecret string) (Credentials, error) {
	data, err := os.ReadFile(p12Path)
	if err != nil {
		return Credentials{}, &ConfigurationError{Field: "certificate", Msg: "erro ao ler certificado", Cause: err}
	}
	return DecodePKCS12(data, password, clientID, clientSecret)
}

// DecodePKCS12 converte um bundle PKCS#12 em credenciais PEM
func DecodePKCS12(data []byte, password, clientID, clientSecret string) (Credentials, error) {
	privateKey, certificate, err := pkcs12.Decode(data, password)
	if err != nil {
		return Credentials{}, &ConfigurationError{Field: "certificate", Msg: "erro ao decodificar certificado PKCS12", Cause: err}
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return Credentials{}, &ConfigurationError{Field: "private_key", Msg: "tipo de chave não suportado", Cause: err}
	}

	return Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Certificate:  pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate.Raw}),
		PrivateKey:   pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}),
	}, nil
}
