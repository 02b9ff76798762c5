package utils

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Algorithm version carried in every QR payload.
const AlgorithmVersion = "V01"

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// CanonicalMessage builds the signable message from the payload tuple:
// positions 0, 2, 3, 4, 5 (ticket id, series, zero-padded number, start date,
// end date) joined by an underscore. The algorithm version and vehicle type
// list are carried in the payload but stay outside the signature; already
// issued tickets depend on this exact field selection.
func CanonicalMessage(data []string) (string, error) {
	if len(data) < 6 {
		return "", fmt.Errorf("payload has %d elements, want at least 6", len(data))
	}
	return strings.Join([]string{data[0], data[2], data[3], data[4], data[5]}, "_"), nil
}

// Sign produces a deterministic PKCS#1 v1.5 signature over the SHA-512
// digest of the message, base64-encoded for the payload.
func Sign(message string, key *rsa.PrivateKey) (string, error) {
	digest := sha512.Sum512([]byte(message))
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA512, digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify checks a (possibly zstd-compressed) QR payload against the public
// key. A wrong or forged signature yields (false, nil); only structural
// problems with the payload itself are returned as errors.
func Verify(payload []byte, isCompressed bool, key *rsa.PublicKey) (bool, error) {
	if isCompressed {
		decompressed, err := DecompressZstd(payload)
		if err != nil {
			return false, err
		}
		payload = decompressed
	}

	var data []string
	if err := json.Unmarshal(payload, &data); err != nil {
		return false, err
	}
	if len(data) < 7 {
		return false, fmt.Errorf("payload has %d elements, want at least 7", len(data))
	}

	message, err := CanonicalMessage(data)
	if err != nil {
		return false, err
	}
	signature, err := base64.StdEncoding.DecodeString(data[len(data)-1])
	if err != nil {
		return false, err
	}

	digest := sha512.Sum512([]byte(message))
	if err := rsa.VerifyPKCS1v15(key, crypto.SHA512, digest[:], signature); err != nil {
		return false, nil
	}
	return true, nil
}

func CompressZstd(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

func DecompressZstd(data []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(data, nil)
}

// LoadPrivateKey reads a PEM-encoded RSA private key (PKCS#1 or PKCS#8).
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", path)
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}

// LoadPublicKey reads a PEM-encoded RSA public key (PKIX or PKCS#1).
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePublicKeyPEM(raw)
}

func ParsePublicKeyPEM(raw []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("no PEM block in public key data")
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}
	return key, nil
}

// GenerateKeys writes a fresh 2048-bit RSA key pair to keyPath. Used on
// first start and by provisioning tooling; rotation is an operator concern.
func GenerateKeys(keyPath, privateKeyFilename, publicKeyFilename string) error {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(keyPath, 0o700); err != nil {
		return err
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(filepath.Join(keyPath, privateKeyFilename), privPEM, 0o600); err != nil {
		return err
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return err
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return os.WriteFile(filepath.Join(keyPath, publicKeyFilename), pubPEM, 0o644)
}
