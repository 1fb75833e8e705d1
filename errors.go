package rsa

import "github.com/prophetss/rsa/internal/domain/cryptoalg"

// Errors returned by this package, matched with errors.Is.
var (
	ErrInvalidParameter = cryptoalg.ErrInvalidParameter
	ErrEncoding         = cryptoalg.ErrEncoding
	ErrDecoding         = cryptoalg.ErrDecoding
	ErrResourceFailure  = cryptoalg.ErrResourceFailure
	ErrMessageTooLarge  = cryptoalg.ErrMessageTooLarge
)
