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
	"github.com/google/uuid"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/configuracion")
	settings.Use(middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		settings.GET("/sistema", h.SystemConfig)
		settings.PUT("/sistema", h.UpdateConfig)

		settings.GET("/campos", h.ListFields)
		settings.POST("/campos", h.CreateField)
		settings.PUT("/campos/:id", h.UpdateField)
		settings.DELETE("/campos/:id", h.DeleteField)

		settings.GET("/tarifas", h.ListTariffs)
		settings.GET("/tarifas/historial", h.TariffHistory)
		settings.PUT("/tarifas/:id", h.ReplaceTariff)

		settings.GET("/espacios", h.ListSpaces)
		settings.PUT("/espacios", h.UpdateTotalSpaces)
		settings.PUT("/espacios/:numero", h.UpdateSpaceState)
	}
}

// SystemConfig returns every configuration entry keyed by clave.
func (h *SettingsHandler) SystemConfig(c *gin.Context) {
	config, err := h.settingsService.SystemConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener la configuración"))
		return
	}

	c.JSON(http.StatusOK, response.OK(config))
}

// UpdateConfig changes the value of one configuration key.
func (h *SettingsHandler) UpdateConfig(c *gin.Context) {
	var req struct {
		Key   string `json:"clave" binding:"required"`
		Value string `json:"valor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	if err := h.settingsService.UpdateConfig(c.Request.Context(), req.Key, req.Value); err != nil {
		if errors.Is(err, service.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Configuración no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al actualizar la configuración"))
		return
	}

	c.JSON(http.StatusOK, response.Message("Configuración actualizada exitosamente"))
}

// ListFields returns the active dynamic form fields in display order.
func (h *SettingsHandler) ListFields(c *gin.Context) {
	fields, err := h.settingsService.ListFields(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener los campos"))
		return
	}

	c.JSON(http.StatusOK, response.OK(fields))
}

func (h *SettingsHandler) CreateField(c *gin.Context) {
	var req service.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	field, err := h.settingsService.CreateField(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrFieldNameTaken) {
			c.JSON(http.StatusBadRequest, response.Error("Ya existe un campo con ese nombre"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al crear el campo"))
		return
	}

	c.JSON(http.StatusCreated, response.OKMessage("Campo creado exitosamente", field))
}

func (h *SettingsHandler) UpdateField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Identificador inválido"))
		return
	}

	var req service.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	field, err := h.settingsService.UpdateField(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, response.Error("Campo no encontrado"))
		case errors.Is(err, service.ErrFieldNameTaken):
			c.JSON(http.StatusBadRequest, response.Error("Ya existe un campo con ese nombre"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al actualizar el campo"))
		}
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Campo actualizado exitosamente", field))
}

// DeleteField deactivates a field instead of removing the row.
func (h *SettingsHandler) DeleteField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Identificador inválido"))
		return
	}

	if err := h.settingsService.DeactivateField(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Campo no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al eliminar el campo"))
		return
	}

	c.JSON(http.StatusOK, response.Message("Campo eliminado exitosamente"))
}

// ListTariffs returns the currently active tariffs.
func (h *SettingsHandler) ListTariffs(c *gin.Context) {
	tariffs, err := h.settingsService.ListTariffs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener las tarifas"))
		return
	}

	c.JSON(http.StatusOK, response.OK(tariffs))
}

// TariffHistory returns every tariff row ever created, newest first.
func (h *SettingsHandler) TariffHistory(c *gin.Context) {
	tariffs, err := h.settingsService.TariffHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener el historial de tarifas"))
		return
	}

	c.JSON(http.StatusOK, response.OK(tariffs))
}

// ReplaceTariff supersedes a tariff with a new active row at a new price.
func (h *SettingsHandler) ReplaceTariff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Identificador inválido"))
		return
	}

	var req service.TariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	tariff, err := h.settingsService.ReplaceTariff(c.Request.Context(), id, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrTariffNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Tarifa no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al actualizar la tarifa"))
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Tarifa actualizada correctamente", tariff))
}

// UpdateTotalSpaces rewrites the espacios_totales configuration value.
func (h *SettingsHandler) UpdateTotalSpaces(c *gin.Context) {
	var req struct {
		Count int `json:"cantidad" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	if err := h.settingsService.UpdateTotalSpaces(c.Request.Context(), req.Count); err != nil {
		if errors.Is(err, service.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Configuración no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al actualizar los espacios"))
		return
	}

	c.JSON(http.StatusOK, response.Message(fmt.Sprintf("Espacios totales actualizados a %d", req.Count)))
}

// ListSpaces returns the whole space pool ordered by number.
func (h *SettingsHandler) ListSpaces(c *gin.Context) {
	spaces, err := h.settingsService.ListSpaces(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al obtener los espacios"))
		return
	}

	c.JSON(http.StatusOK, response.OK(spaces))
}

// UpdateSpaceState changes one space's state, e.g. to mantenimiento.
func (h *SettingsHandler) UpdateSpaceState(c *gin.Context) {
	var req service.SpaceStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	if err := h.settingsService.UpdateSpaceState(c.Request.Context(), c.Param("numero"), req.State); err != nil {
		switch {
		case errors.Is(err, service.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, response.Error("Espacio no encontrado"))
		case errors.Is(err, service.ErrInvalidSpaceState):
			c.JSON(http.StatusBadRequest, response.Error("Estado de espacio no válido"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al actualizar el espacio"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Message("Espacio actualizado exitosamente"))
}
