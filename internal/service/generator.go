package service

import (
	"crypto/rand"
	"math/big"
)

const (
	codeLength = 6
	charset    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateShortCode produces a random 6-character alphanumeric code. It
// makes no uniqueness guarantee; the registry re-checks at insertion time.
func GenerateShortCode() (string, error) {
	result := make([]byte, codeLength)
	for i := 0; i < codeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[num.Int64()]
	}
	return string(result), nil
}
