package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
)

// EncodeHex renders every byte as two uppercase hexadecimal digits.
func EncodeHex(message []byte) string {
	return strings.ToUpper(hex.EncodeToString(message))
}

// DecodeHex pairs consecutive hexadecimal digits back into bytes.
// Upper and lower case digits are accepted.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: hex string has odd length %d", cryptoalg.ErrDecoding, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrDecoding, err)
	}
	return b, nil
}

// BytesToInt maps a message to the integer spelled by its hexadecimal form.
// The empty message maps to zero. Leading zero bytes do not change the value.
func BytesToInt(message []byte) (*big.Int, error) {
	if len(message) == 0 {
		return new(big.Int), nil
	}
	m, ok := new(big.Int).SetString(EncodeHex(message), 16)
	if !ok {
		return nil, fmt.Errorf("%w: message is not representable as hexadecimal", cryptoalg.ErrEncoding)
	}
	return m, nil
}

// IntToBytes is the inverse of BytesToInt. The hexadecimal rendering of x has
// no leading zeros, so an odd digit count is reported as ErrDecoding rather
// than padded. Zero decodes to the empty message.
func IntToBytes(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer", cryptoalg.ErrDecoding)
	}
	if x.Sign() == 0 {
		return []byte{}, nil
	}
	return DecodeHex(x.Text(16))
}
