package rsa

import (
	"crypto/rand"
	"io"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/prophetss/rsa/internal/infrastructure/cryptography"
	"github.com/prophetss/rsa/internal/pkg/config"
	"github.com/prophetss/rsa/internal/pkg/logger"
)

const (
	// MinKeySize is the smallest accepted key size in bits.
	MinKeySize = cryptoalg.MinKeySize
	// MaxKeySize is the largest accepted key size in bits.
	MaxKeySize = cryptoalg.MaxKeySize
	// PublicExponent is the fixed public exponent.
	PublicExponent = cryptoalg.PublicExponent
)

// GenerateKeyPair returns the modulus n, the public exponent e and the private
// exponent d of a fresh key pair as radix-62 text. The modulus has at least
// keySize bits. keySize must lie in [MinKeySize, MaxKeySize].
func GenerateKeyPair(keySize uint) (n, e, d string, err error) {
	return GenerateKeyPairFrom(rand.Reader, keySize)
}

// GenerateKeyPairFrom is GenerateKeyPair with an explicit entropy source.
// random must not be shared with other goroutines unless it is safe for
// concurrent use.
func GenerateKeyPairFrom(random io.Reader, keySize uint) (n, e, d string, err error) {
	generator, err := cryptography.NewRSAKeyGenerator(random, defaultLogger())
	if err != nil {
		return "", "", "", err
	}

	keyPair, err := generator.GenerateKeys(keySize)
	if err != nil {
		return "", "", "", err
	}
	return keyPair.Public.N, keyPair.Public.E, keyPair.Private.D, nil
}

// Encrypt computes message^e mod n and returns the ciphertext as radix-62 text.
func Encrypt(message []byte, n, e string) (string, error) {
	processor, err := cryptography.NewRSAProcessor(defaultLogger())
	if err != nil {
		return "", err
	}
	return processor.Encrypt(message, cryptoalg.PublicKey{N: n, E: e})
}

// Decrypt computes ciphertext^d mod n and returns the recovered message.
func Decrypt(ciphertext, n, d string) ([]byte, error) {
	processor, err := cryptography.NewRSAProcessor(defaultLogger())
	if err != nil {
		return nil, err
	}
	return processor.Decrypt(ciphertext, cryptoalg.PrivateKey{N: n, D: d})
}

// defaultLogger stays quiet unless the host process initialized the shared logger.
func defaultLogger() logger.Logger {
	return logger.GetLoggerOrDefault(config.LogLevelError)
}
