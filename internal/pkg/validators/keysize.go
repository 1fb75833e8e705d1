package validators

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/prophetss/rsa/internal/domain/cryptoalg"
)

// RSAKeySizeTag is the struct tag that checks an RSA modulus size
const RSAKeySizeTag = "rsa_keysize"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// RSAKeySizeValidation validates that the key size lies in [cryptoalg.MinKeySize, cryptoalg.MaxKeySize].
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Uint()
	return keySize >= cryptoalg.MinKeySize && keySize <= cryptoalg.MaxKeySize
}

// New returns a shared validator with the custom tags of this package registered.
func New() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation(RSAKeySizeTag, RSAKeySizeValidation); err != nil {
			panic(fmt.Sprintf("failed to register %s validation: %v", RSAKeySizeTag, err))
		}
	})
	return validate
}

// ValidateRSAKeySize reports a cryptoalg.ErrInvalidParameter if keySize is out of range.
func ValidateRSAKeySize(keySize uint) error {
	if err := New().Var(keySize, RSAKeySizeTag); err != nil {
		return fmt.Errorf("%w: key size %d not in [%d, %d]", cryptoalg.ErrInvalidParameter, keySize, cryptoalg.MinKeySize, cryptoalg.MaxKeySize)
	}
	return nil
}
