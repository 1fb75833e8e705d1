package cryptography

import (
	"fmt"
	"io"
	"math/big"

	"filippo.io/bigmod"
	"github.com/prophetss/rsa/internal/domain/cryptoalg"
)

// primalityRounds is the Miller-Rabin round count passed to ProbablyPrime,
// which also runs a Baillie-PSW test.
const primalityRounds = 20

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// randomBits draws an integer uniformly from [2^(bits-1), 2^bits - 1).
func randomBits(random io.Reader, bits uint) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: cannot draw a %d-bit integer", cryptoalg.ErrInvalidParameter, bits)
	}

	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf))*8 - bits
	allOnes := new(big.Int).Sub(new(big.Int).Lsh(bigOne, bits), bigOne)

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("%w: failed to read from entropy source: %v", cryptoalg.ErrResourceFailure, err)
		}
		buf[0] &= byte(0xFF >> excess)

		x := new(big.Int).SetBytes(buf)
		x.SetBit(x, int(bits-1), 1)
		if x.Cmp(allOnes) < 0 {
			return x, nil
		}
	}
}

// nextPrime returns the smallest prime >= x.
func nextPrime(x *big.Int) *big.Int {
	if x.Cmp(bigTwo) <= 0 {
		return big.NewInt(2)
	}

	p := new(big.Int).Set(x)
	if p.Bit(0) == 0 {
		p.Add(p, bigOne)
	}
	for !p.ProbablyPrime(primalityRounds) {
		p.Add(p, bigTwo)
	}
	return p
}

// modPow computes base^exponent mod modulus in variable time. Only public
// exponents may go through here.
func modPow(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// modPowConstantTime computes base^exponent mod modulus with an exponentiation
// whose timing does not depend on the exponent bits. The modulus must be odd.
// base is reduced modulo the modulus first.
func modPowConstantTime(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Cmp(bigOne) <= 0 || modulus.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: modulus must be odd and greater than one", cryptoalg.ErrEncoding)
	}

	m, err := bigmod.NewModulusFromBig(modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrEncoding, err)
	}

	reduced := new(big.Int).Mod(base, modulus)
	x, err := bigmod.NewNat().SetBytes(reduced.Bytes(), m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrEncoding, err)
	}

	out := bigmod.NewNat().Exp(x, exponent.Bytes(), m)
	return new(big.Int).SetBytes(out.Bytes(m)), nil
}
