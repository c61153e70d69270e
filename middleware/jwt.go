package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lms/apperrors"
)

// SessionValidator checks that the session behind a token's jti is still live
// and matches the request fingerprint.
type SessionValidator interface {
	ValidateSession(jti, userAgent, ipAddress string) (bool, error)
}

// GenerateJWT generates a JWT token for the user
func GenerateJWT(secret string, ttl time.Duration, userID uint, name, role, email, jti string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"jti":    jti,
		"iat":    time.Now().Unix(),          // issued at
		"exp":    time.Now().Add(ttl).Unix(), // expiry
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// Protected returns a middleware that checks for a valid JWT token and a live
// session behind it.
func Protected(secret string, sessions SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the token from the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		// Extract the token part
		tokenString := authHeader[len("Bearer "):]

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Check if the token method is valid
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		// If there's an error parsing the token
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["userId"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		jti, _ := claims["jti"].(string)
		if jti == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		// The token alone is not enough; the session must not be revoked.
		valid, err := sessions.ValidateSession(jti, c.Get("User-Agent"), c.IP())
		if err != nil {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate session!", nil)
		}
		if !valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired or revoked", nil)
		}

		userID := claims["userId"].(float64) // JWT claims are typically stored as `float64`, so cast it
		c.Locals("userId", uint(userID))     // Store userID in context as uint
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("email", email)
		}
		c.Locals("jti", jti)

		// If valid, continue to the next handler
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

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse maps a service error to its HTTP status and envelope.
func ErrorResponse(c *fiber.Ctx, err error) error {
	return JsonResponse(c, apperrors.HTTPStatus(err), false, err.Error(), nil)
}
