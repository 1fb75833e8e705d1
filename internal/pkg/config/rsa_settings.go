package config

import (
	"fmt"

	"github.com/prophetss/rsa/internal/pkg/validators"
)

// Entropy source constants
const (
	EntropyCrypto = "crypto"
	EntropySeeded = "seeded"
)

// RSASettings holds key generation settings
type RSASettings struct {
	KeySize uint   `mapstructure:"key_size" validate:"required,rsa_keysize"`
	Entropy string `mapstructure:"entropy" validate:"required,oneof=crypto seeded"`
	// Seed is only read when Entropy is "seeded". Seeded keys are reproducible and
	// must never protect real data.
	Seed uint64 `mapstructure:"seed"`
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	if err := validators.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}
	return nil
}
