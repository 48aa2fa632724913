package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordertrack/internal/adapters/in/http/middleware"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invokeWithAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, kernel.UUID) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen kernel.UUID
	handler := middleware.BearerAuth(testSecret)(func(c echo.Context) error {
		seen, _ = c.Get(middleware.MerchantIDContextKey).(kernel.UUID)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, seen
}

func TestBearerAuth_ValidToken(t *testing.T) {
	merchantID := kernel.NewUUID()
	rec, seen := invokeWithAuth(t, "Bearer "+signedToken(t, testSecret, merchantID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.IsEqual(merchantID))
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	rec, _ := invokeWithAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_NotBearerScheme(t *testing.T) {
	rec, _ := invokeWithAuth(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	rec, _ := invokeWithAuth(t, "Bearer "+signedToken(t, "other-secret", kernel.NewUUID().String()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": kernel.NewUUID().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _ := invokeWithAuth(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_SubjectNotAUUID(t *testing.T) {
	rec, _ := invokeWithAuth(t, "Bearer "+signedToken(t, testSecret, "not-a-uuid"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_UnsignedAlgorithmRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": kernel.NewUUID().String(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	rec, _ := invokeWithAuth(t, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
