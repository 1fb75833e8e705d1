//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/prophetss/rsa/internal/infrastructure/codec"
	"github.com/prophetss/rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize512  = 512
	TestKeySize1024 = 1024
)

func setupKeyGenerator(t *testing.T, seed uint64) *rsaKeyGenerator {
	t.Helper()
	return &rsaKeyGenerator{
		random: NewSeededReader(seed),
		logger: testutil.SetupTestLogger(t),
	}
}

func TestRSAKeyGenerator_Invariants(t *testing.T) {
	for _, keySize := range []uint{512, 777, 1024} {
		keySize := keySize
		t.Run(fmt.Sprintf("%d-bit", keySize), func(t *testing.T) {
			generator := setupKeyGenerator(t, uint64(keySize))

			km, err := generator.generate(keySize)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, uint(km.n.BitLen()), keySize)
			assert.GreaterOrEqual(t, km.p.Cmp(km.q), 0, "p must not be smaller than q")
			assert.True(t, km.p.ProbablyPrime(20))
			assert.True(t, km.q.ProbablyPrime(20))
			assert.Equal(t, 0, new(big.Int).Mul(km.p, km.q).Cmp(km.n))
			assert.Equal(t, int64(cryptoalg.PublicExponent), km.e.Int64())

			gcd := new(big.Int).GCD(nil, nil, km.e, km.phi)
			assert.Equal(t, 0, gcd.Cmp(bigOne))

			de := new(big.Int).Mul(km.d, km.e)
			assert.Equal(t, 0, de.Mod(de, km.phi).Cmp(bigOne))
		})
	}
}

func TestRSAKeyGenerator_GenerateKeys(t *testing.T) {
	generator, err := NewRSAKeyGenerator(rand.Reader, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyPair, err := generator.GenerateKeys(TestKeySize1024)
	require.NoError(t, err)
	require.NotNil(t, keyPair)

	assert.NotEmpty(t, keyPair.ID.String())
	assert.Equal(t, uint(TestKeySize1024), keyPair.KeySize)
	assert.Equal(t, keyPair.Public.N, keyPair.Private.N)
	assert.Equal(t, "h33", keyPair.Public.E)
	assert.NoError(t, keyPair.Public.Validate())
	assert.NoError(t, keyPair.Private.Validate())

	n, err := codec.DecodeRadix62(keyPair.Public.N)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n.BitLen(), TestKeySize1024)
}

func TestRSAKeyGenerator_InvalidKeySize(t *testing.T) {
	generator := setupKeyGenerator(t, 1)

	for _, keySize := range []uint{0, 256, 511, 16385, 20000} {
		keyPair, err := generator.GenerateKeys(keySize)
		assert.Nil(t, keyPair)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidParameter, "key size %d", keySize)
	}
}

func TestRSAKeyGenerator_SeededIsReproducible(t *testing.T) {
	first, err := setupKeyGenerator(t, 42).GenerateKeys(TestKeySize512)
	require.NoError(t, err)

	second, err := setupKeyGenerator(t, 42).GenerateKeys(TestKeySize512)
	require.NoError(t, err)

	other, err := setupKeyGenerator(t, 43).GenerateKeys(TestKeySize512)
	require.NoError(t, err)

	assert.Equal(t, first.Public, second.Public)
	assert.Equal(t, first.Private, second.Private)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Public.N, other.Public.N)
}

func TestRSAKeyGenerator_EntropyFailure(t *testing.T) {
	generator, err := NewRSAKeyGenerator(iotest.ErrReader(errors.New("drained")), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyPair, err := generator.GenerateKeys(TestKeySize512)
	assert.Nil(t, keyPair)
	assert.ErrorIs(t, err, cryptoalg.ErrResourceFailure)
}

func TestNewRSAKeyGenerator_NilArguments(t *testing.T) {
	_, err := NewRSAKeyGenerator(nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)

	_, err = NewRSAKeyGenerator(rand.Reader, nil)
	assert.Error(t, err)
}
