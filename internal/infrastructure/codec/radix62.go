package codec

import (
	"fmt"
	"math/big"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
)

// Radix is the base of the text form of key components and ciphertexts.
// Digits are 0-9, then a-z, then A-Z.
const Radix = 62

// EncodeRadix62 renders a non-negative integer in base 62.
func EncodeRadix62(x *big.Int) string {
	return x.Text(Radix)
}

// DecodeRadix62 parses base 62 text. Empty input, signs and any character
// outside [0-9a-zA-Z] are rejected with ErrEncoding.
func DecodeRadix62(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty radix-62 string", cryptoalg.ErrEncoding)
	}
	for i := 0; i < len(s); i++ {
		if !isRadix62Digit(s[i]) {
			return nil, fmt.Errorf("%w: invalid radix-62 digit %q at offset %d", cryptoalg.ErrEncoding, s[i], i)
		}
	}
	x, ok := new(big.Int).SetString(s, Radix)
	if !ok {
		return nil, fmt.Errorf("%w: malformed radix-62 string", cryptoalg.ErrEncoding)
	}
	return x, nil
}

func isRadix62Digit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
