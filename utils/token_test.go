package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		token, err := GenerateAccessToken()
		require.NoError(t, err)
		assert.Len(t, token, AccessTokenLength)
		assert.False(t, seen[token], "duplicate token")
		seen[token] = true

		for _, r := range token {
			assert.True(t, strings.ContainsRune(tokenAlphabet, r))
		}
	}
}

func TestRandomString_Empty(t *testing.T) {
	s, err := RandomString(0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}
