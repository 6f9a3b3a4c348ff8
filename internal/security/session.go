package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

// The session cookie payload is an HS512-signed JWT carrying the
// identity claims, encrypted whole with AES-256-GCM. GCM authenticates
// the ciphertext, the JWT signature authenticates the claims after
// decryption, so a tampered cookie fails on either layer and the caller
// falls back to the empty session.

var ErrInvalidSession = errors.New("invalid session")

type SessionClaims struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Picture   *string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// SealSession serializes the identity into an opaque cookie value.
func SealSession(secret string, user models.SessionUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Picture:   user.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	sealed, err := encrypt(secret, []byte(signed))
	if err != nil {
		return "", fmt.Errorf("seal session: %w", err)
	}
	return sealed, nil
}

// OpenSession reverses SealSession. It never distinguishes failure
// modes beyond ErrInvalidSession; a missing or forged cookie must look
// the same to callers.
func OpenSession(secret string, sealed string) (models.SessionUser, error) {
	plaintext, err := decrypt(secret, sealed)
	if err != nil {
		return models.EmptySession, ErrInvalidSession
	}

	token, err := jwt.ParseWithClaims(string(plaintext), &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.EmptySession, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return models.EmptySession, ErrInvalidSession
	}

	return models.SessionUser{
		ID:         claims.Subject,
		FirstName:  claims.FirstName,
		LastName:   claims.LastName,
		Email:      claims.Email,
		Picture:    claims.Picture,
		IsLoggedIn: true,
	}, nil
}

func sealKey(secret string) []byte {
	sum := sha256.Sum256([]byte("seal:" + secret))
	return sum[:]
}

func encrypt(secret string, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(sealKey(secret))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func decrypt(secret string, encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(sealKey(secret))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, ErrInvalidSession
	}

	return gcm.Open(nil, sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():], nil)
}
