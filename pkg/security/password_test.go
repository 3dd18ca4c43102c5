package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, h.Verify("correct horse battery staple", hash))
	assert.False(t, h.Verify("correct horse battery stapler", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHasher_SaltedDigests(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("p@ssw0rd")
	require.NoError(t, err)
	b, err := h.Hash("p@ssw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same secret should hash differently under a fresh salt")
	assert.True(t, h.Verify("p@ssw0rd", a))
	assert.True(t, h.Verify("p@ssw0rd", b))
}

func TestHasher_TruncatesLongSecrets(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	base := strings.Repeat("a", MaxSecretLength)

	hash, err := h.Hash(base + "first-tail")
	require.NoError(t, err)

	assert.True(t, h.Verify(base+"first-tail", hash))
	assert.True(t, h.Verify(base+"another-tail", hash))
	assert.True(t, h.Verify(base, hash))
	assert.False(t, h.Verify(base[:MaxSecretLength-1], hash))
}

func TestHasher_TruncatesMultibyteSecretsByBytes(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	secret := strings.Repeat("ж", 40) // 80 bytes

	hash, err := h.Hash(secret)
	require.NoError(t, err)

	assert.True(t, h.Verify(secret, hash))
	assert.True(t, h.Verify(strings.Repeat("ж", 36)+"tail", hash))
}

func TestHasher_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("whatever", "not-a-bcrypt-hash"))
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).Cost)
}
