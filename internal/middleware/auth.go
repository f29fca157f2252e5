package middleware

import (
	"net/http"
	"os"
	"strings"

	"parking/internal/model"
	"parking/internal/repository"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextUser holds the resolved *model.User for the request.
	ContextUser = "currentUser"
	// ContextUserRole holds the resolved role string.
	ContextUserRole = "userRole"
)

// GetJWTSecret returns the token signing key from the environment.
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // development fallback, never used in release mode
	}
	return []byte(secret)
}

// userRepo resolves token identities to live user rows. InitAuth sets it
// during startup wiring.
var userRepo repository.UserRepository

// InitAuth sets the user repository the auth middleware resolves tokens
// against.
func InitAuth(repo repository.UserRepository) {
	userRepo = repo
}

// RequireAuth validates the bearer token and resolves it to a live,
// active user record. Missing, malformed, expired tokens and inactive
// users all fail with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Acceso denegado. Token no proporcionado."))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Acceso denegado. Token no proporcionado."))
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return GetJWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Token inválido o expirado."))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Token inválido o expirado."))
			return
		}

		id, ok := claims["id"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Token inválido o expirado."))
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), id)
		if err != nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Usuario no encontrado o inactivo."))
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RequireRole checks the authenticated identity's role against an
// allow-list. Must run after RequireAuth.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("No autenticado"))
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Error("No tiene permisos para realizar esta acción"))
	}
}

// CurrentUser returns the resolved user for the request, nil when
// RequireAuth did not run.
func CurrentUser(c *gin.Context) *model.User {
	value, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
