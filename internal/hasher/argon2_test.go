package hasher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/ddnsp/internal/hasher"
)

// fastParams keeps the tests quick.
func fastParams() hasher.Params {
	return hasher.Params{Time: 1, Memory: 64, Parallelism: 1, HashLength: 16, SaltLength: 8}
}

func TestHashVerify(t *testing.T) {
	t.Parallel()

	h := hasher.NewArgon2(fastParams())

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=64,t=1,p=1$"))
	require.NotContains(t, hash, "correct horse")

	ok, err := h.Verify(hash, "correct horse")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify(hash, "battery staple")
	require.NoError(t, err)
	require.False(t, ok)

	require.False(t, h.NeedsRehash(hash))
}

func TestHashSalted(t *testing.T) {
	t.Parallel()

	h := hasher.NewArgon2(fastParams())

	hash1, err := h.Hash("correct horse")
	require.NoError(t, err)
	hash2, err := h.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, hash1, hash2)
}

func TestVerifyInvalid(t *testing.T) {
	t.Parallel()

	h := hasher.NewArgon2(fastParams())
	for name, hash := range map[string]string{
		"empty":     "",
		"plain":     "correct horse",
		"argon2i":   "$argon2i$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		"version":   "$argon2id$v=16$m=64,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		"params":    "$argon2id$v=19$m=64,t=x,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		"zero-time": "$argon2id$v=19$m=64,t=0,p=1$c2FsdHNhbHQ$aGFzaGhhc2hoYXNoaGFzaA",
		"salt":      "$argon2id$v=19$m=64,t=1,p=1$!!!$aGFzaGhhc2hoYXNoaGFzaA",
		"key":       "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ$",
		"parts":     "$argon2id$v=19$m=64,t=1,p=1$c2FsdHNhbHQ",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok, err := h.Verify(hash, "correct horse")
			require.ErrorIs(t, err, hasher.ErrInvalidHash)
			require.False(t, ok)
			require.True(t, h.NeedsRehash(hash))
		})
	}
}

func TestRehash(t *testing.T) {
	t.Parallel()

	old := hasher.NewArgon2(fastParams())
	stronger := fastParams()
	stronger.Time = 2
	current := hasher.NewArgon2(stronger)

	oldHash, err := old.Hash("correct horse")
	require.NoError(t, err)

	// Old hashes keep verifying with the new hasher.
	ok, err := current.Verify(oldHash, "correct horse")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, current.NeedsRehash(oldHash))

	newHash, err := current.Hash("correct horse")
	require.NoError(t, err)
	require.False(t, current.NeedsRehash(newHash))

	ok, err = current.Verify(newHash, "correct horse")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNeedsRehashLengths(t *testing.T) {
	t.Parallel()

	longer := fastParams()
	longer.HashLength = 32
	hash, err := hasher.NewArgon2(longer).Hash("correct horse")
	require.NoError(t, err)
	require.True(t, hasher.NewArgon2(fastParams()).NeedsRehash(hash))
}

func TestParamsCheck(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		modify    func(*hasher.Params)
		errString string
	}{
		"default":     {func(*hasher.Params) {}, ""},
		"time":        {func(p *hasher.Params) { p.Time = 0 }, "the time cost (0) should be positive"},
		"parallelism": {func(p *hasher.Params) { p.Parallelism = 0 }, "the parallelism (0) should be positive"},
		"memory":      {func(p *hasher.Params) { p.Memory = 16 }, "the memory cost (16 KiB) should be at least 8 KiB per lane"},
		"hash":        {func(p *hasher.Params) { p.HashLength = 2 }, "the hash length (2) should be at least 4"},
		"salt":        {func(p *hasher.Params) { p.SaltLength = 4 }, "the salt length (4) should be at least 8"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := hasher.DefaultParams()
			tc.modify(&p)
			err := p.Check()
			if tc.errString == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.errString)
			}
		})
	}
}
