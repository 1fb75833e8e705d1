package cryptoalg

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PublicKey holds the modulus n and the public exponent e as radix-62 text
type PublicKey struct {
	N string `json:"n" validate:"required,alphanum"`
	E string `json:"e" validate:"required,alphanum"`
}

// Validate checks that both components are non-empty radix-62 strings
func (k PublicKey) Validate() error {
	return validateKeyText(k)
}

// PrivateKey holds the modulus n and the private exponent d as radix-62 text
type PrivateKey struct {
	N string `json:"n" validate:"required,alphanum"`
	D string `json:"d" validate:"required,alphanum"`
}

// Validate checks that both components are non-empty radix-62 strings
func (k PrivateKey) Validate() error {
	return validateKeyText(k)
}

// KeyPair is the result of a key generation. ID only correlates log lines and CLI
// output; it is not part of the key material.
type KeyPair struct {
	ID      uuid.UUID  `json:"id"`
	KeySize uint       `json:"key_size"`
	Public  PublicKey  `json:"public"`
	Private PrivateKey `json:"private"`
}

var keyTextValidator = validator.New()

func validateKeyText(key interface{}) error {
	err := keyTextValidator.Struct(key)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: validation failed: %v", ErrEncoding, messages)
	}
	return fmt.Errorf("%w: %v", ErrEncoding, err)
}
