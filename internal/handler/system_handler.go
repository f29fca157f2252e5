package handler

import (
	"net/http"
	"time"

	"parking/internal/repository"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the unauthenticated health and smoke-test
// endpoints.
type SystemHandler struct {
	userRepo   repository.UserRepository
	spaceRepo  repository.SpaceRepository
	configRepo repository.ConfigurationRepository
}

func NewSystemHandler(
	userRepo repository.UserRepository,
	spaceRepo repository.SpaceRepository,
	configRepo repository.ConfigurationRepository,
) *SystemHandler {
	return &SystemHandler{userRepo: userRepo, spaceRepo: spaceRepo, configRepo: configRepo}
}

func (h *SystemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/test", h.Test)
}

// Health reports database reachability through a few row counts.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.userRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Error("Base de datos no disponible"))
		return
	}
	spaces, _ := h.spaceRepo.Count(ctx)
	configs, _ := h.configRepo.Count(ctx)

	c.JSON(http.StatusOK, response.OK(gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"database": gin.H{
			"usuarios":        users,
			"espacios":        spaces,
			"configuraciones": configs,
		},
	}))
}

// Test is a trivial liveness probe without database access.
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, response.Message("API funcionando correctamente"))
}
