package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt 参数。16 字节随机盐，64 字节派生密钥，
// 存储格式为 hex(hash) + "." + hex(salt)。
const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	saltLength    = 16
	keyLength     = 64
	hashSeparator = "."
)

// HashPassword 使用 scrypt 生成密码哈希。
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(derived) + hashSeparator + hex.EncodeToString(salt), nil
}

// CheckPasswordHash 使用存储的盐重新派生密钥并做常量时间比较。
func CheckPasswordHash(password, stored string) bool {
	hashed, salt, ok := strings.Cut(stored, hashSeparator)
	if !ok {
		return false
	}

	expected, err := hex.DecodeString(hashed)
	if err != nil || len(expected) != keyLength {
		return false
	}
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}

	derived, err := scrypt.Key([]byte(password), saltBytes, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(expected, derived) == 1
}
