package auth

import (
	"strings"
	"sync"
	"testing"

	"qkart/config"
	domainerrors "qkart/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps the suite fast; bcrypt.MinCost is 4.
const testCost = bcrypt.MinCost

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "pass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := hasher.Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_SaltMakesHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	hash1, err := hasher.Hash("samepassword1")
	require.NoError(t, err)
	hash2, err := hasher.Hash("samepassword1")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)

	for _, hash := range []string{hash1, hash2} {
		ok, err := hasher.Verify("samepassword1", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_HashRejectsInvalidInput(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty", password: ""},
		{name: "over 72 bytes", password: strings.Repeat("a1", 37)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hasher.Hash(tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
		})
	}
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)
	password := "correct1"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	t.Run("wrong password is a mismatch, not an error", func(t *testing.T) {
		ok, err := hasher.Verify("incorrect1", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty password is a mismatch", func(t *testing.T) {
		ok, err := hasher.Verify("", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash is a hashing error", func(t *testing.T) {
		ok, err := hasher.Verify(password, "invalid_hash")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	})

	t.Run("wrong prefix is a hashing error", func(t *testing.T) {
		bogus := "#" + hash[1:]
		_, err := hasher.Verify(password, bogus)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	})
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: DefaultBcryptCost},
		{name: "missing auth section", cfg: &config.Config{}, want: DefaultBcryptCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	low, ok := NewBcryptHasherWithCost(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, low.cost)

	high, ok := NewBcryptHasherWithCost(99).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MaxCost, high.cost)
}

func TestBcryptHasher_ConcurrentUse(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			password := "parallel" + string(rune('a'+i)) + "1"
			hash, err := hasher.Hash(password)
			if err != nil {
				errs <- err

				return
			}
			if ok, err := hasher.Verify(password, hash); err != nil || !ok {
				errs <- errors.Errorf("verify failed for %s: %v", password, err)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
