package handler

import (
	"errors"
	"net/http"

	"parking/internal/middleware"
	"parking/internal/model"
	"parking/internal/service"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/profile", middleware.RequireAuth(), h.Profile)
		auth.POST("/register", middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin), h.Register)
	}
}

// Login authenticates and returns a signed token with the user profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInactiveUser) {
			c.JSON(http.StatusUnauthorized, response.Error("Credenciales inválidas"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al iniciar sesión"))
		return
	}

	c.JSON(http.StatusOK, response.OK(result))
}

// Profile returns the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error("Token inválido o expirado."))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"id":     user.ID,
		"nombre": user.Name,
		"email":  user.Email,
		"rol":    user.Role,
	}))
}

// Register creates a new account. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, response.Error("El correo ya está registrado"))
		case errors.Is(err, service.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.Error("Rol no válido"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al registrar usuario"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.OKMessage("Usuario creado exitosamente", user))
}
