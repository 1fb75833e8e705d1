package cryptoalg

import "errors"

var (
	// ErrInvalidParameter is returned when a requested key size lies outside [MinKeySize, MaxKeySize].
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEncoding is returned when a key component or ciphertext is not a valid radix-62 integer.
	ErrEncoding = errors.New("encoding error")

	// ErrDecoding is returned when a recovered plaintext is not an even-length hexadecimal string.
	ErrDecoding = errors.New("decoding error")

	// ErrResourceFailure is returned when an underlying resource, such as the entropy source, fails.
	ErrResourceFailure = errors.New("resource failure")

	// ErrMessageTooLarge is returned when the encoded message is not smaller than the modulus.
	ErrMessageTooLarge = errors.New("message too large for modulus")
)
