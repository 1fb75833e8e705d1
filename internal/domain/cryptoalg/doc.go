// Package cryptoalg defines the core interfaces and structures for textbook RSA:
// key pair generation, raw public-key encryption and raw private-key decryption
// over radix-62 encoded key components.
package cryptoalg
