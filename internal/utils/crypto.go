package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// GenerateRandomString generates a cryptographically secure random string
// using the provided charset and length
func GenerateRandomString(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(fmt.Sprintf("failed to generate random string: %v", err))
		}
		b[i] = charset[n.Int64()]
	}
	return string(b)
}

// GenerateInviteToken generates a department invite token. Charset
// excludes ambiguous characters: 0, O, I, 1.
func GenerateInviteToken(length int) string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	return GenerateRandomString(length, charset)
}

// GeneratePublicId returns a unique object-store public id under the
// given folder.
func GeneratePublicId(folder string) string {
	return folder + "/" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
