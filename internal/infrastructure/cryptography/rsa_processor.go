package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/prophetss/rsa/internal/infrastructure/codec"
	"github.com/prophetss/rsa/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// Encrypt computes message^e mod n without padding.
// The encoded message must be smaller than n, otherwise ErrMessageTooLarge is
// returned instead of a ciphertext that would decrypt to a different message.
func (r *rsaProcessor) Encrypt(message []byte, publicKey cryptoalg.PublicKey) (string, error) {
	if err := publicKey.Validate(); err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	n, err := parseModulus(publicKey.N)
	if err != nil {
		return "", err
	}
	e, err := codec.DecodeRadix62(publicKey.E)
	if err != nil {
		return "", fmt.Errorf("invalid public exponent: %w", err)
	}

	m, err := codec.BytesToInt(message)
	if err != nil {
		return "", fmt.Errorf("failed to encode message: %w", err)
	}
	if m.Cmp(n) >= 0 {
		return "", fmt.Errorf("%w: message is %d bits, modulus is %d bits", cryptoalg.ErrMessageTooLarge, m.BitLen(), n.BitLen())
	}

	c := modPow(m, e, n)

	r.logger.Info("RSA encryption succeeded")
	return codec.EncodeRadix62(c), nil
}

// Decrypt computes ciphertext^d mod n in constant time with respect to d and
// decodes the result. A ciphertext not smaller than n is reduced first.
func (r *rsaProcessor) Decrypt(ciphertext string, privateKey cryptoalg.PrivateKey) ([]byte, error) {
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	n, err := parseModulus(privateKey.N)
	if err != nil {
		return nil, err
	}
	d, err := codec.DecodeRadix62(privateKey.D)
	if err != nil {
		return nil, fmt.Errorf("invalid private exponent: %w", err)
	}
	c, err := codec.DecodeRadix62(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext: %w", err)
	}

	m, err := modPowConstantTime(c, d, n)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	plainText, err := codec.IntToBytes(m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plaintext: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}

func parseModulus(text string) (*big.Int, error) {
	n, err := codec.DecodeRadix62(text)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	if n.Sign() == 0 {
		return nil, fmt.Errorf("invalid modulus: %w: modulus is zero", cryptoalg.ErrEncoding)
	}
	return n, nil
}
