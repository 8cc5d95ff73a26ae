package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(CreatorID(c))
	})
	return app
}

func TestJWTMiddleware(t *testing.T) {
	valid := signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signedToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "user-42"})
	noSubject := signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + valid, status: fiber.StatusOK},
		{name: "missing", header: "", status: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, status: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: fiber.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, status: fiber.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + noSubject, status: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.token", status: fiber.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", status: fiber.StatusUnauthorized},
	}

	app := newApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if tc.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != "user-42" {
					t.Fatalf("expected creator user-42, got %q", body)
				}
			}
		})
	}
}

func TestJWTMiddleware_RejectsNoneAlgorithm(t *testing.T) {
	token := signedToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{Subject: "user-42"})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestParseCreatorToken(t *testing.T) {
	hs512 := signedToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{Subject: "creator-7"})
	claims, err := ParseCreatorToken(testSecret, hs512)
	if err != nil || claims.Subject != "creator-7" {
		t.Fatalf("unexpected result %+v (%v)", claims, err)
	}

	noSubject := signedToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{})
	if _, err := ParseCreatorToken(testSecret, noSubject); !errors.Is(err, errMissingSubject) {
		t.Fatalf("expected errMissingSubject, got %v", err)
	}
}

func TestCreatorID_OpenRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.SendString("[" + CreatorID(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Fatalf("expected no creator, got %q", body)
	}
}
