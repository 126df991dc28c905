package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fastParams = Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(fastParams)

	encoded, err := h.Hash("S3gura!2024")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify(encoded, "S3gura!2024")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(encoded, "otra")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsEveryHash(t *testing.T) {
	h := NewPasswordHasher(fastParams)
	a, _ := h.Hash("misma")
	b, _ := h.Hash("misma")
	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_VerifiesLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("antigua"), bcrypt.MinCost)
	require.NoError(t, err)

	h := NewPasswordHasher(fastParams)
	ok, err := h.Verify(string(legacy), "antigua")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(string(legacy), "nueva")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(fastParams)
	for _, encoded := range []string{"", "texto-plano", "$argon2id$v=19$roto"} {
		_, err := h.Verify(encoded, "x")
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secreto", AccessTokenExp: time.Hour, TokenIssuer: "registro-academico"})

	token, expiresIn, err := svc.GenerateAccessToken(TokenSubject{UserID: 7, Email: "ana@uni.edu", Role: "docente"})
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "docente", claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestJWTService_Rejections(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secreto", AccessTokenExp: time.Hour, TokenIssuer: "registro-academico"})
	token, _, err := issuer.GenerateAccessToken(TokenSubject{UserID: 7})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewJWTService(JWTConfig{SecretKey: "secreto", AccessTokenExp: time.Hour, TokenIssuer: "registro-academico"})
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "otro", AccessTokenExp: time.Hour, TokenIssuer: "registro-academico"})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "secreto", AccessTokenExp: time.Hour, TokenIssuer: "otro"})
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := issuer.ValidateToken("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc.def", want: "abc.def"},
		{header: "Bearer ", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidFormat, tt.header)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPin(t *testing.T) {
	pin, err := GeneratePin(6)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{6}$`, pin)

	odd, err := GeneratePin(5)
	require.NoError(t, err)
	assert.Len(t, odd, 5)

	digest := HashPin(pin)
	assert.NotEqual(t, pin, digest)
	assert.True(t, PinMatches(digest, strings.ToLower(pin)))
	assert.True(t, PinMatches(digest, " "+pin+" "))
	assert.False(t, PinMatches(digest, "000000"))
}
