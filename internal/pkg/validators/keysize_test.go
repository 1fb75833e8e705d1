//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRSAKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize uint
		wantErr bool
	}{
		{"zero", 0, true},
		{"too small", 256, true},
		{"one below minimum", 511, true},
		{"minimum", 512, false},
		{"common", 2048, false},
		{"odd size", 1025, false},
		{"maximum", 16384, false},
		{"one above maximum", 16385, true},
		{"too large", 20000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRSAKeySize(tt.keySize)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, cryptoalg.ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRSAKeySizeTag(t *testing.T) {
	type request struct {
		KeySize uint `validate:"rsa_keysize"`
	}

	assert.NoError(t, New().Struct(request{KeySize: 4096}))
	assert.Error(t, New().Struct(request{KeySize: 128}))
}

func TestNew_Shared(t *testing.T) {
	assert.Same(t, New(), New())
}
