package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("senha123")
	require.NoError(t, err)
	require.NotEqual(t, "senha123", hash)

	assert.NoError(t, CompareHash(hash, "senha123"))
	assert.Error(t, CompareHash(hash, "outra-senha"))
}

func TestGetHashIsSalted(t *testing.T) {
	first, err := GetHash("senha123")
	require.NoError(t, err)
	second, err := GetHash("senha123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCompareHashInvalidHash(t *testing.T) {
	assert.Error(t, CompareHash("nao-e-um-hash", "senha123"))
}
