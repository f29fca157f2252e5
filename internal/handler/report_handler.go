package handler

import (
	"errors"
	"fmt"
	"net/http"

	"parking/internal/middleware"
	"parking/internal/model"
	"parking/internal/service"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
	exportService service.ExportService
}

func NewReportHandler(reportService service.ReportService, exportService service.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reportes")
	reports.Use(middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		reports.GET("/ingresos", h.Income)
		reports.GET("/ocupacion", h.Occupancy)
		reports.GET("/vehiculos", h.Vehicles)
		reports.GET("/exportar/:tipo/:formato", h.Export)
	}
}

// Income returns the income report over an optional window.
func (h *ReportHandler) Income(c *gin.Context) {
	report, err := h.reportService.IncomeReport(c.Request.Context(), c.Query("fechaInicio"), c.Query("fechaFin"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.Error("Rango de fechas inválido"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al generar el reporte de ingresos"))
		return
	}

	c.JSON(http.StatusOK, response.OK(report))
}

// Occupancy returns the per-hour occupancy report for one day.
func (h *ReportHandler) Occupancy(c *gin.Context) {
	report, err := h.reportService.OccupancyReport(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.Error("Fecha inválida, use el formato YYYY-MM-DD"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al generar el reporte de ocupación"))
		return
	}

	c.JSON(http.StatusOK, response.OK(report))
}

// Vehicles returns the frequent-vehicle report over an optional window.
func (h *ReportHandler) Vehicles(c *gin.Context) {
	report, err := h.reportService.VehicleReport(c.Request.Context(), c.Query("fechaInicio"), c.Query("fechaFin"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.Error("Rango de fechas inválido"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al generar el reporte de vehículos"))
		return
	}

	c.JSON(http.StatusOK, response.OK(report))
}

// Export re-renders a report and streams it as an Excel or PDF download.
func (h *ReportHandler) Export(c *gin.Context) {
	file, err := h.exportService.Export(
		c.Request.Context(),
		c.Param("tipo"),
		c.Param("formato"),
		c.Query("fechaInicio"),
		c.Query("fechaFin"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownReportType):
			c.JSON(http.StatusBadRequest, response.Error("Tipo de reporte no válido"))
		case errors.Is(err, service.ErrUnknownExportFormat):
			c.JSON(http.StatusBadRequest, response.Error("Formato de exportación no válido"))
		case errors.Is(err, service.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, response.Error("Rango de fechas inválido"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al exportar el reporte"))
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
