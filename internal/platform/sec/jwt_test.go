// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/platform/sec"
)

const testIssuer = "catalog.admin"

func signToken(t *testing.T, key *rsa.PrivateKey, claims sec.AuthClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(issuer string, expiresIn time.Duration) sec.AuthClaims {
	now := time.Now()
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "editor-42",
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Role: string(sec.RoleEditor),
	}
}

func TestTokenVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := sec.NewTokenVerifierFromKey(&key.PublicKey, testIssuer)

	t.Run("valid", func(t *testing.T) {
		claims, err := verifier.VerifyToken(signToken(t, key, validClaims(testIssuer, time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "editor-42", claims.UserID)
		assert.Equal(t, "editor", claims.Role)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, validClaims(testIssuer, -time.Minute)))
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, validClaims("someone.else", time.Hour)))
		assert.Error(t, err)
	})

	t.Run("foreign_key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		_, err = verifier.VerifyToken(signToken(t, other, validClaims(testIssuer, time.Hour)))
		assert.Error(t, err)
	})
}

func TestNewTokenVerifier_ReadsPEM(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwt.pub")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	verifier, err := sec.NewTokenVerifier(path, testIssuer)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(signToken(t, key, validClaims(testIssuer, time.Hour)))
	assert.NoError(t, err)

	_, err = sec.NewTokenVerifier(filepath.Join(t.TempDir(), "missing.pub"), testIssuer)
	assert.Error(t, err)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("").AtLeast(sec.RoleViewer))
}
