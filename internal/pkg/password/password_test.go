package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, Verify("secret1", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHash_SaltedPerCall(t *testing.T) {
	h1, err := Hash("secret1")
	require.NoError(t, err)
	h2, err := Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerify_EmptyHash(t *testing.T) {
	assert.False(t, Verify("secret1", ""))
}
