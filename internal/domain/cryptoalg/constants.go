package cryptoalg

// MinKeySize is the smallest accepted modulus size in bits
const MinKeySize = 512

// MaxKeySize is the largest accepted modulus size in bits
const MaxKeySize = 16384

// DefaultKeySize is used when no key size has been configured
const DefaultKeySize = 2048

// PublicExponent is the fixed public exponent e
const PublicExponent = 65537

// AlgorithmRSA represents the textbook RSA algorithm
const AlgorithmRSA = "RSA"
