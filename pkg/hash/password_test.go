package hash_test

import (
	"testing"

	"jobboard-backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := hash.Password("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, hash.IsHashed(hashed))
	assert.True(t, hash.Verify("secret1", hashed))
	assert.False(t, hash.Verify("secret2", hashed))
}

func TestIsHashedDetectsPlaintext(t *testing.T) {
	assert.False(t, hash.IsHashed("hunter2"))
	assert.False(t, hash.IsHashed(""))

	hashed, err := hash.Password("hunter2")
	require.NoError(t, err)
	assert.True(t, hash.IsHashed(hashed))
}
