package utils

import (
	"crypto/rand"
	"math/big"
)

// AccessTokenLength là độ dài token mà middleware MockAuth chấp nhận
const AccessTokenLength = 60

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateAccessToken tạo token ngẫu nhiên dài 60 ký tự
func GenerateAccessToken() (string, error) {
	return RandomString(AccessTokenLength)
}

// RandomString tạo chuỗi ngẫu nhiên gồm chữ và số
func RandomString(n int) (string, error) {
	bytes := make([]byte, n)
	limit := big.NewInt(int64(len(tokenAlphabet)))
	for i := range bytes {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		bytes[i] = tokenAlphabet[idx.Int64()]
	}
	return string(bytes), nil
}
