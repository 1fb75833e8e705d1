package cryptography

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand/v2"

	"github.com/prophetss/rsa/internal/pkg/config"
)

// NewSeededReader returns a deterministic ChaCha8 stream derived from seed.
// Keys drawn from it are reproducible and therefore only fit for tests and
// fixtures. The reader is not safe for concurrent use.
func NewSeededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return mathrand.NewChaCha8(key)
}

// NewEntropySource selects the random source for key generation.
func NewEntropySource(settings *config.RSASettings) (io.Reader, error) {
	switch settings.Entropy {
	case config.EntropyCrypto:
		return rand.Reader, nil
	case config.EntropySeeded:
		return NewSeededReader(settings.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported entropy source: %s", settings.Entropy)
	}
}
