package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params are the parameters of Argon2id.
type Params struct {
	Time        uint32 // number of passes
	Memory      uint32 // in KiB
	Parallelism uint8
	HashLength  uint32 // in bytes
	SaltLength  uint32 // in bytes
}

// DefaultParams returns the parameters recommended for interactive logins.
func DefaultParams() Params {
	return Params{
		Time:        3,
		Memory:      64 * 1024,
		Parallelism: 4,
		HashLength:  32,
		SaltLength:  16,
	}
}

// Check reports parameters that argon2 would reject or that are unreasonably weak.
func (p Params) Check() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("the time cost (%d) should be positive", p.Time)
	case p.Parallelism < 1:
		return fmt.Errorf("the parallelism (%d) should be positive", p.Parallelism)
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("the memory cost (%d KiB) should be at least 8 KiB per lane", p.Memory)
	case p.HashLength < 4:
		return fmt.Errorf("the hash length (%d) should be at least 4", p.HashLength)
	case p.SaltLength < 8:
		return fmt.Errorf("the salt length (%d) should be at least 8", p.SaltLength)
	default:
		return nil
	}
}

// Argon2 hashes passwords with Argon2id and encodes them in the PHC string format
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
//
// where salt and hash use unpadded standard base64.
type Argon2 struct {
	params Params
}

var _ Hasher = Argon2{} //nolint:exhaustruct

// NewArgon2 creates a new hasher with the given parameters.
func NewArgon2(params Params) Argon2 {
	return Argon2{params: params}
}

// Params returns the current parameters.
func (a Argon2) Params() Params {
	return a.params
}

// Hash hashes the password with a fresh random salt.
func (a Argon2) Hash(password string) (string, error) {
	salt := make([]byte, a.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.Memory, a.params.Parallelism, a.params.HashLength)
	return encode(a.params, salt, key), nil
}

// Verify recomputes the hash with the parameters and salt embedded in hash.
func (a Argon2) Verify(hash, password string) (bool, error) {
	p, salt, key, err := decode(hash)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.HashLength)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

// NeedsRehash compares the parameters embedded in hash with the current ones.
// Unparsable hashes always need rehashing.
func (a Argon2) NeedsRehash(hash string) bool {
	p, _, _, err := decode(hash)
	return err != nil || p != a.params
}

func encode(p Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decode(hash string) (Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Parallelism); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if p.Time < 1 || p.Parallelism < 1 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	p.SaltLength = uint32(len(salt)) //nolint:gosec
	p.HashLength = uint32(len(key))  //nolint:gosec
	return p, salt, key, nil
}
