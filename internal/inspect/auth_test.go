package inspect

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
)

func TestNewTokenAuthRequiresSecret(t *testing.T) {
	_, err := NewTokenAuth("", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestTokenAuthIssueAndValidate(t *testing.T) {
	a, err := NewTokenAuth("s3cret", time.Hour)
	require.NoError(t, err)

	token, err := a.Issue("ops")
	require.NoError(t, err)

	claims, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenAuthNoExpiry(t *testing.T) {
	a, err := NewTokenAuth("s3cret", 0)
	require.NoError(t, err)
	token, err := a.Issue("ops")
	require.NoError(t, err)

	claims, err := a.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenAuthRejects(t *testing.T) {
	a, _ := NewTokenAuth("s3cret", time.Hour)
	other, _ := NewTokenAuth("different", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := other.Issue("ops")
		require.NoError(t, err)
		_, err = a.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = a.Validate(token)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "ops"}).
			SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = a.Validate(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := a.Validate("not.a.token")
		assert.Error(t, err)
	})
}

func TestServerRequiresToken(t *testing.T) {
	l, err := dispatch.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	cfg := DefaultConfig()
	cfg.AuthSecret = "s3cret"
	s, err := New(l, nil, cfg, nil)
	require.NoError(t, err)
	h := s.Handler()

	var body ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, get(t, h, "/api/implementations", &body))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)

	a, _ := NewTokenAuth("s3cret", time.Minute)
	token, err := a.Issue("ops")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/implementations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/implementations?token="+token, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/implementations", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
