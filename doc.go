// Package rsa implements textbook RSA: key pair generation, raw public-key
// encryption and raw private-key decryption.
//
// Key components and ciphertexts are exchanged as radix-62 text (digits 0-9,
// a-z, A-Z). Messages are mapped to integers through their uppercase
// hexadecimal spelling, so a message must encode to an integer smaller than the
// modulus, must not start with a byte below 0x10 to survive decryption, and
// loses any leading zero bytes.
//
// There is no padding. Encryption is deterministic and malleable, which makes
// this package unsuitable for protecting data without an OAEP-style layer on
// top of it.
package rsa
