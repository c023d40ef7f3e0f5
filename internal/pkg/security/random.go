// Package security holds low-level helpers shared by the auth providers.
package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

// ExtractBearerToken returns the token of an "Authorization: Bearer" header.
func ExtractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	const prefix = "Bearer "
	token, ok := strings.CutPrefix(header, prefix)
	if !ok {
		return "", errors.New("missing Bearer prefix")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("empty bearer token")
	}

	return token, nil
}
