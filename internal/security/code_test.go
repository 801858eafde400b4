package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for range 50 {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "unexpected character %q in %q", c, code)
		}
	}
}

func TestGenerateNumericCodeInvalidLength(t *testing.T) {
	_, err := GenerateNumericCode(0)
	assert.Error(t, err)

	_, err = GenerateNumericCode(-3)
	assert.Error(t, err)
}
