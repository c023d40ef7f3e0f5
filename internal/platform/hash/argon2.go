package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/pkg/security"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("hash: invalid argon2id hash format")

type Argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
	pepper     string
}

var _ Hasher = (*Argon2Hasher)(nil)

func NewArgon2Hasher(cfg *config.Argon2, pepper string) *Argon2Hasher {
	return &Argon2Hasher{
		memory:     cfg.Memory,
		iterations: cfg.Iterations,
		threads:    cfg.Threads,
		saltLen:    cfg.SaltLength,
		keyLen:     cfg.KeyLength,
		pepper:     pepper,
	}
}

// Hash returns the PHC-formatted argon2id hash of plain.
func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt, err := security.GenerateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain+h.pepper), salt, h.iterations, h.memory, h.threads, h.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches hashed. The cost parameters are read from hashed.
func (h *Argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("base64 decode salt: %w", err)
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("base64 decode hash: %w", err)
	}

	if len(want) > int(^uint32(0)) {
		return false, fmt.Errorf("%w: key length %d exceeds uint32", ErrInvalidHash, len(want))
	}

	got := argon2.IDKey([]byte(plain+h.pepper), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
