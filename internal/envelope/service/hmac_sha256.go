package service

import (
	"crypto/hmac"
	"crypto/sha256"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// HMACSHA256Authenticator implements Authenticator with HMAC-SHA256.
type HMACSHA256Authenticator struct{}

// NewHMACSHA256Authenticator creates a new HMAC-SHA256 authenticator.
func NewHMACSHA256Authenticator() *HMACSHA256Authenticator {
	return &HMACSHA256Authenticator{}
}

// Tag returns HMAC-SHA256(key, data). The key must be exactly 32 bytes.
func (a *HMACSHA256Authenticator) Tag(key, data []byte) (envelopeDomain.MacTag, error) {
	var tag envelopeDomain.MacTag
	authKey, err := envelopeDomain.NewAuthKey(key)
	if err != nil {
		return tag, err
	}
	defer envelopeDomain.Zero(authKey[:])

	mac := hmac.New(sha256.New, authKey[:])
	mac.Write(data)
	copy(tag[:], mac.Sum(nil))

	return tag, nil
}

// Verify recomputes the tag of data and compares it to tag in constant time.
func (a *HMACSHA256Authenticator) Verify(key, data []byte, tag envelopeDomain.MacTag) (bool, error) {
	expected, err := a.Tag(key, data)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected[:], tag[:]), nil
}
