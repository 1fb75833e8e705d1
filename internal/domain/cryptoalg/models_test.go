//go:build unit
// +build unit

package cryptoalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicKeyValidation(t *testing.T) {
	valid := PublicKey{N: "3xYz09", E: "h33"}
	assert.NoError(t, valid.Validate())

	err := PublicKey{N: "", E: "h33"}.Validate()
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Contains(t, err.Error(), "Field: N, Tag: required")

	err = PublicKey{N: "3xYz09", E: "h3/3"}.Validate()
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Contains(t, err.Error(), "Field: E, Tag: alphanum")
}

func TestPrivateKeyValidation(t *testing.T) {
	valid := PrivateKey{N: "3xYz09", D: "Zz9"}
	assert.NoError(t, valid.Validate())

	err := PrivateKey{N: "-3xYz09", D: "Zz9"}.Validate()
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Contains(t, err.Error(), "Field: N, Tag: alphanum")

	err = PrivateKey{N: "3xYz09"}.Validate()
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Contains(t, err.Error(), "Field: D, Tag: required")
}
