package authtoken_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krugerlabs/taskdash/core/authtoken"
)

const testSigningKey = "test-signing-key-32-characters!!"

func mintToken(t *testing.T, sub string, role authtoken.Role, iat, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"iat":  iat.Unix(),
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

func TestDecode(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		iat := time.Now().Add(-time.Minute).Truncate(time.Second)
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := mintToken(t, "alice@example.com", authtoken.RoleAdmin, iat, exp)

		claims, err := authtoken.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Subject)
		assert.Equal(t, authtoken.RoleAdmin, claims.Role)
		assert.Equal(t, iat.Unix(), claims.IssuedAt)
		assert.Equal(t, exp.Unix(), claims.ExpiresAt)
	})

	t.Run("signature is not checked", func(t *testing.T) {
		token := mintToken(t, "bob@example.com", authtoken.RoleUser,
			time.Now(), time.Now().Add(time.Hour))

		// Mangle the signature segment; the payload must still decode.
		mangled := token[:len(token)-4] + "AAAA"

		claims, err := authtoken.Decode(mangled)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", claims.Subject)
	})

	t.Run("malformed input never panics", func(t *testing.T) {
		invalidJSON := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		wrongShape := base64.RawURLEncoding.EncodeToString([]byte(`42`))

		tests := []struct {
			name  string
			token string
		}{
			{"empty string", ""},
			{"random bytes", "\x00\x01\x02garbage"},
			{"one segment", "onlyheader"},
			{"two segments", "aGVhZGVy.cGF5bG9hZA"},
			{"four segments", "a.b.c.d"},
			{"invalid base64", "!!!.@@@.###"},
			{"three segment garbage", "abc.def.ghi"},
			{"valid shape invalid JSON", "eyJhbGciOiJIUzI1NiJ9." + invalidJSON + ".sig"},
			{"valid JSON wrong type", "eyJhbGciOiJIUzI1NiJ9." + wrongShape + ".sig"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				claims, err := authtoken.Decode(tt.token)
				require.ErrorIs(t, err, authtoken.ErrMalformedToken)
				assert.Nil(t, claims)
			})
		}
	})
}

func TestIsExpired(t *testing.T) {
	t.Run("future expiry is valid", func(t *testing.T) {
		token := mintToken(t, "a@b.com", authtoken.RoleUser,
			time.Now(), time.Now().Add(time.Hour))
		assert.False(t, authtoken.IsExpired(token))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		token := mintToken(t, "a@b.com", authtoken.RoleUser,
			time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
		assert.True(t, authtoken.IsExpired(token))
	})

	t.Run("expiry at current time is expired", func(t *testing.T) {
		token := mintToken(t, "a@b.com", authtoken.RoleUser,
			time.Now().Add(-time.Hour), time.Now())
		assert.True(t, authtoken.IsExpired(token))
	})

	t.Run("missing exp claim is expired", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "a@b.com",
			"role": "USER",
		}).SignedString([]byte(testSigningKey))
		require.NoError(t, err)

		assert.True(t, authtoken.IsExpired(token))
	})

	t.Run("undecodable token is expired", func(t *testing.T) {
		assert.True(t, authtoken.IsExpired("not-a-token"))
	})
}

func TestUsername(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"a@b.com", "a"},
		{"alice.smith@example.org", "alice.smith"},
		{"noat", "noat"},
		{"@leading.com", ""},
		{"two@at@signs", "two"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, authtoken.Username(tt.email), "email %q", tt.email)
	}
}
