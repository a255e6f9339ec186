package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_AndCompare(t *testing.T) {
	hash, err := GetHash("Secret1x")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1x", hash)

	assert.NoError(t, CompareHash(hash, "Secret1x"))
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("Secret1x")
	require.NoError(t, err)

	assert.Error(t, CompareHash(hash, "Secret1y"))
	assert.Error(t, CompareHash(hash, ""))
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	first, err := GetHash("Secret1x")
	require.NoError(t, err)
	second, err := GetHash("Secret1x")
	require.NoError(t, err)

	// bcrypt солит каждый хэш отдельно
	assert.NotEqual(t, first, second)
}
