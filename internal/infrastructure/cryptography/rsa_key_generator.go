package cryptography

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"
	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/prophetss/rsa/internal/infrastructure/codec"
	"github.com/prophetss/rsa/internal/pkg/logger"
	"github.com/prophetss/rsa/internal/pkg/validators"
)

// rsaKeyGenerator struct that implements the RSAKeyGenerator interface
type rsaKeyGenerator struct {
	random io.Reader
	logger logger.Logger
}

// keyMaterial holds every integer of one generation. Only n, e and d leave the
// generator.
type keyMaterial struct {
	p, q, n, phi, e, d *big.Int
}

// NewRSAKeyGenerator creates a key generator that draws its primes from random.
// Pass crypto/rand.Reader in production. The generator is as safe for concurrent
// use as random is.
func NewRSAKeyGenerator(random io.Reader, logger logger.Logger) (cryptoalg.RSAKeyGenerator, error) {
	if random == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaKeyGenerator{
		random: random,
		logger: logger,
	}, nil
}

// GenerateKeys generates a key pair whose modulus has at least keySize bits,
// with the public exponent fixed to 65537.
func (g *rsaKeyGenerator) GenerateKeys(keySize uint) (*cryptoalg.KeyPair, error) {
	km, err := g.generate(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	n := codec.EncodeRadix62(km.n)
	keyPair := &cryptoalg.KeyPair{
		ID:      uuid.New(),
		KeySize: keySize,
		Public: cryptoalg.PublicKey{
			N: n,
			E: codec.EncodeRadix62(km.e),
		},
		Private: cryptoalg.PrivateKey{
			N: n,
			D: codec.EncodeRadix62(km.d),
		},
	}

	g.logger.Info("Generated RSA key pair ", keyPair.ID, " with a ", km.n.BitLen(), "-bit modulus")
	return keyPair, nil
}

// generate searches for p >= q such that n = p*q has at least keySize bits
// and e is invertible modulo (p-1)(q-1).
//
// Neither loop is capped. A short product redraws q and a totient sharing a
// factor with e redraws p; both are rare, so the expected number of
// iterations is O(1).
func (g *rsaKeyGenerator) generate(keySize uint) (*keyMaterial, error) {
	if err := validators.ValidateRSAKeySize(keySize); err != nil {
		return nil, err
	}

	e := big.NewInt(cryptoalg.PublicExponent)
	lp := (keySize + 1) / 2
	lq := keySize - lp

	for attempt := 1; ; attempt++ {
		pRand, err := randomBits(g.random, lp)
		if err != nil {
			return nil, err
		}
		p := nextPrime(pRand)

		var q, n *big.Int
		for draw := 1; ; draw++ {
			qRand, err := randomBits(g.random, lq)
			if err != nil {
				return nil, err
			}
			q = nextPrime(qRand)
			if p.Cmp(q) < 0 {
				p, q = q, p
			}
			if p.Cmp(q) == 0 {
				continue
			}

			n = new(big.Int).Mul(p, q)
			if uint(n.BitLen()) >= keySize {
				break
			}
			g.logger.Debug("Modulus has ", n.BitLen(), " bits after draw ", draw, ", drawing a new q")
		}

		pMinusOne := new(big.Int).Sub(p, bigOne)
		qMinusOne := new(big.Int).Sub(q, bigOne)
		phi := new(big.Int).Mul(pMinusOne, qMinusOne)

		if gcd := new(big.Int).GCD(nil, nil, phi, e); gcd.Cmp(bigOne) != 0 {
			g.logger.Debug("Totient shares a factor with e on attempt ", attempt, ", drawing a new p")
			continue
		}

		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}

		return &keyMaterial{p: p, q: q, n: n, phi: phi, e: e, d: d}, nil
	}
}
