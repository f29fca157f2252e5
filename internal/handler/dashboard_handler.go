package handler

import (
	"net/http"
	"time"

	"parking/internal/middleware"
	"parking/internal/model"
	"parking/internal/service"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEmployee))
	{
		dashboard.GET("/estadisticas", h.Stats)
		dashboard.GET("/busqueda", h.QuickSearch)
		dashboard.GET("/estadisticas/fecha", h.StatsByDate)
	}
}

// Stats returns the live dashboard counters and lists.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener estadísticas"))
		return
	}

	c.JSON(http.StatusOK, response.OK(stats))
}

// QuickSearch matches plates by substring.
func (h *DashboardHandler) QuickSearch(c *gin.Context) {
	results, err := h.dashboardService.QuickSearch(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al realizar la búsqueda"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{"resultados": results}))
}

// StatsByDate is a placeholder series endpoint; the reports carry the
// real per-date aggregation.
func (h *DashboardHandler) StatsByDate(c *gin.Context) {
	date := c.DefaultQuery("fecha", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Fecha inválida, use el formato YYYY-MM-DD"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"fecha":     date,
		"registros": []interface{}{},
	}))
}
