package auth

import (
	"strings"
	"testing"
	"time"

	"notekeeper/config"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/entity"
	"notekeeper/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func newTestJWTService(t *testing.T) (*jwtService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(testConfig(testSecret), clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, err := svc.Issue(entity.Identity{ID: 7, Username: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.Identity{ID: 7, Username: "alice"}, claims.Identity())
	assert.Equal(t, clock.current.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, clock.current.Add(DefaultTokenTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	svc, clock := newTestJWTService(t)
	issuedAt := clock.current

	token, err := svc.Issue(entity.Identity{ID: 1, Username: "bob"})
	require.NoError(t, err)

	clock.current = issuedAt.Add(47 * time.Hour)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.current = issuedAt.Add(49 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testConfig(testSecret)
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc, _ := newTestJWTService(t)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, domainerrors.ErrAuthMissing)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, _ := newTestJWTService(t)

	token, err := svc.Issue(entity.Identity{ID: 1, Username: "bob"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.string"},
		{name: "not a jwt", token: "abc"},
		{name: "tampered signature", token: tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)
		})
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, clock := newTestJWTService(t)

	other, err := newJWTService(testConfig("a_completely_different_secret"), clock.Now)
	require.NoError(t, err)

	token, err := other.Issue(entity.Identity{ID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, clock := newTestJWTService(t)

	claims := &service.Claims{
		UserID:   1,
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(clock.current),
			ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(hs512)
	assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(none)
	assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	svc, clock := newTestJWTService(t)

	claims := &service.Claims{
		UserID:   1,
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(clock.current),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrAuthInvalid)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}
