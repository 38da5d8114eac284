package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is how long a session token stays valid. Logout is a pure
// client-side discard; there is no server-side revocation.
const TokenTTL = 7 * 24 * time.Hour

// JWT issues and verifies session tokens. Tokens carry identity only
// (userId, email); role is re-derived from the store per request so role
// changes take effect without a re-login.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

// Generate creates a signed session token for the user
func (j *JWT) Generate(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Protected is a middleware that checks for a valid bearer token in the
// request and stores the resolved identity in the request context.
func (j *JWT) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No token")
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No token")
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return j.secret, nil
		})

		if err != nil || !token.Valid {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["userId"] == nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		// JWT numbers decode as float64
		userID := claims["userId"].(float64)
		c.Locals("userId", uint(userID))
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}

		return c.Next()
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes the error body shape the mobile client expects
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": errors,
	})
}
