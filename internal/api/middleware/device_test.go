package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func runDevice(t *testing.T, secret string, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	return runDeviceWith(t, Device(secret, time.Hour, false), req)
}

func runDeviceWith(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	handler := mw(func(c echo.Context) error {
		got = DeviceIDFrom(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, got
}

func deviceCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == DeviceCookieName {
			return ck
		}
	}
	return nil
}

func TestDevice_MintsCookieForNewVisitor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, id := runDevice(t, "secret", req)

	if id == "" {
		t.Fatalf("device id not set")
	}
	ck := deviceCookie(rec)
	if ck == nil {
		t.Fatalf("expected %s cookie to be set", DeviceCookieName)
	}
	if !ck.HttpOnly {
		t.Fatalf("device cookie must be HttpOnly")
	}
	if ck.Secure {
		t.Fatalf("device cookie is Secure only when asked")
	}
}

func TestDevice_SecureCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, _ := runDeviceWith(t, Device("secret", time.Hour, true), req)

	ck := deviceCookie(rec)
	if ck == nil {
		t.Fatalf("expected %s cookie to be set", DeviceCookieName)
	}
	if !ck.Secure {
		t.Fatalf("expected Secure flag on device cookie")
	}
}

func TestDevice_ReusesValidCookie(t *testing.T) {
	signed, err := signDevice([]byte("secret"), "device-1", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DeviceCookieName, Value: signed})
	rec, id := runDevice(t, "secret", req)

	if id != "device-1" {
		t.Fatalf("expected device-1, got %q", id)
	}
	if deviceCookie(rec) != nil {
		t.Fatalf("valid cookie must not be reissued")
	}
}

func TestDevice_ReplacesTamperedCookie(t *testing.T) {
	signed, err := signDevice([]byte("other-secret"), "device-1", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DeviceCookieName, Value: signed})
	rec, id := runDevice(t, "secret", req)

	if id == "device-1" || id == "" {
		t.Fatalf("expected a fresh device id, got %q", id)
	}
	if deviceCookie(rec) == nil {
		t.Fatalf("expected replacement cookie")
	}
}

func TestDevice_ReplacesExpiredCookie(t *testing.T) {
	signed, err := signDevice([]byte("secret"), "device-1", time.Minute, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DeviceCookieName, Value: signed})
	_, id := runDevice(t, "secret", req)

	if id == "device-1" {
		t.Fatalf("expired device token must not be accepted")
	}
}

func TestDevice_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "device-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DeviceCookieName, Value: signed})
	_, id := runDevice(t, "secret", req)

	if id == "device-1" {
		t.Fatalf("unsigned device token must not be accepted")
	}
}
