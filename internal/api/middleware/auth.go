package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// creatorIDKey is the fiber Locals key holding the verified token subject
const creatorIDKey = "userID"

var (
	errMissingSubject = errors.New("token has no subject")

	hmacParser = jwt.NewParser(jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	}))
)

// CreatorClaims are the claims of a creator's bearer token
type CreatorClaims struct {
	jwt.RegisteredClaims
}

// ParseCreatorToken verifies an HMAC signed token and returns its claims.
// The subject identifies the creator and must be present.
func ParseCreatorToken(secret, tokenString string) (*CreatorClaims, error) {
	claims := &CreatorClaims{}
	token, err := hmacParser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

// CreatorID returns the subject stored by JWTMiddleware, or "" on open routes
func CreatorID(c *fiber.Ctx) string {
	id, _ := c.Locals(creatorIDKey).(string)
	return id
}

// JWTMiddleware creates JWT auth middleware for creator bearer tokens
func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || tokenString == "" {
			return unauthorized(c, "Invalid authorization format")
		}

		claims, err := ParseCreatorToken(secret, tokenString)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(creatorIDKey, claims.Subject)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
