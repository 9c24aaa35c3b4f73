package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("stock-api", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "stock-api", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", duration: time.Hour, key: "k"},
		{name: "zero duration", issuer: "i", key: "k"},
		{name: "empty key", issuer: "i", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("stock-api", 77, time.Hour, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "key", "stock-api")
	require.NoError(t, err)
	assert.Equal(t, int64(77), parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("stock-api", 1, time.Hour, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("stock-api", 1, -time.Minute, "key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "stock-api", target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "other", target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "stock-api", target: jwt.ErrTokenExpired},
		{name: "malformed", token: "not-a-jwt", key: "key", issuer: "stock-api", target: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestParseUnverifiedJWT_ReadsClaimsWithoutKey(t *testing.T) {
	generated, err := GenerateJWTToken("stock-api", 5, -time.Minute, "key")
	require.NoError(t, err)

	parsed, err := ParseUnverifiedJWT(generated.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
	assert.True(t, parsed.Expired(time.Now()))
}

func TestParseUnverifiedJWT_Malformed(t *testing.T) {
	_, err := ParseUnverifiedJWT("a.b")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer T2", BearerHeader("T2"))
}
