package auth

import (
	"strings"
	"testing"

	domainerrors "taskmanager/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	h, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return h.(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(t)

	password := "correct-password"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("correct-password")
	require.NoError(t, err)
	second, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("correct-password", first))
	assert.True(t, hasher.Check("correct-password", second))
}

func TestBcryptHasher_HashRejectsInvalidInput(t *testing.T) {
	hasher := newTestHasher(t)

	for name, password := range map[string]string{
		"empty":    "",
		"too long": strings.Repeat("a", maxPasswordBytes+1),
	} {
		t.Run(name, func(t *testing.T) {
			hash, err := hasher.Hash(password)
			assert.Empty(t, hash)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
		})
	}
}

func TestBcryptHasher_HashAcceptsMaxLength(t *testing.T) {
	hasher := newTestHasher(t)

	password := strings.Repeat("a", maxPasswordBytes)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(t)
	password := "correct-password"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher, err := NewBcryptHasherWithCost(customCost)
	require.NoError(t, err)

	password := "correct-password"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	_, err := NewBcryptHasherWithCost(bcrypt.MinCost - 1)
	assert.Error(t, err)

	_, err = NewBcryptHasherWithCost(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()
	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
