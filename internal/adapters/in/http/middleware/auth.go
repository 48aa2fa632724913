// Package middleware provides HTTP middleware for the inbound adapter.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// MerchantIDContextKey is the echo context key under which the authenticated
// merchant id is stored for downstream handlers.
const MerchantIDContextKey = "merchant_id"

// unauthorizedBody is the single response shape for every authentication
// failure; the reason is never disclosed to the caller.
type unauthorizedBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BearerAuth verifies an HS256-signed bearer token against the shared secret
// and stores the token subject as the merchant id in the request context.
// Any failure, missing header, bad signature, wrong algorithm, or malformed
// subject, yields the same 401 response.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(c)
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return unauthorized(c)
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				return unauthorized(c)
			}

			merchantID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(MerchantIDContextKey, merchantID)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, unauthorizedBody{
		Code:    http.StatusUnauthorized,
		Message: "Invalid or missing credentials",
	})
}
