package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeviceCookieName is the cookie carrying the signed device token.
const DeviceCookieName = "salon_device"

// Device identifies the browser behind a request. A valid HS256 device token is read
// from the cookie; a missing, tampered or expired one is replaced by a fresh device id.
// The id is stored in the context under ContextKeyDeviceID. secure sets the cookie's
// Secure flag.
func Device(secret string, ttl time.Duration, secure bool) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deviceID, ok := readDevice(c, key)
			if !ok {
				now := time.Now()
				deviceID = uuid.NewString()
				signed, err := signDevice(key, deviceID, ttl, now)
				if err != nil {
					return fmt.Errorf("sign device token: %w", err)
				}

				cookie := &http.Cookie{
					Name:     DeviceCookieName,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				}
				if ttl > 0 {
					cookie.Expires = now.Add(ttl)
				}
				c.SetCookie(cookie)
			}

			c.Set(ContextKeyDeviceID, deviceID)
			return next(c)
		}
	}
}

func readDevice(c echo.Context, key []byte) (string, bool) {
	cookie, err := c.Cookie(DeviceCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return key, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func signDevice(key []byte, deviceID string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  deviceID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
