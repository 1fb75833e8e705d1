package cryptoalg

// RSAKeyGenerator produces textbook RSA key pairs.
type RSAKeyGenerator interface {
	// GenerateKeys generates a key pair whose modulus has at least keySize bits.
	// keySize must lie in [MinKeySize, MaxKeySize], otherwise ErrInvalidParameter is returned.
	GenerateKeys(keySize uint) (*KeyPair, error)
}

// RSAProcessor handles raw (unpadded) RSA encryption and decryption.
// NOTE: textbook RSA is deterministic and malleable. Any production use needs a
// padding scheme such as OAEP layered on top of this interface.
type RSAProcessor interface {
	// Encrypt computes message^e mod n and returns it as radix-62 text.
	Encrypt(message []byte, publicKey PublicKey) (string, error)

	// Decrypt computes ciphertext^d mod n with a constant-time exponentiation
	// and decodes the result back into bytes.
	Decrypt(ciphertext string, privateKey PrivateKey) ([]byte, error)
}
