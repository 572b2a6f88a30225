package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
)

// GenerateOTP returns a 6-digit numeric code uniformly distributed
// over [100000, 999999].
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	return strconv.FormatInt(n.Int64()+100000, 10)
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// stored emails go through this, so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
