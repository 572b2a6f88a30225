package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateOTP()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	require.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
}

func TestParseInt(t *testing.T) {
	require.Equal(t, 3, ParseInt("3", 1))
	require.Equal(t, 1, ParseInt("", 1))
	require.Equal(t, 1, ParseInt("abc", 1))
	require.Equal(t, 1, ParseInt("0", 1))
	require.Equal(t, 1, ParseInt("-2", 1))
}
