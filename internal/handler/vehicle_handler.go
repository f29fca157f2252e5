package handler

import (
	"errors"
	"net/http"
	"time"

	"parking/internal/middleware"
	"parking/internal/model"
	"parking/internal/service"
	"parking/pkg/pagination"
	"parking/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	parkingService service.ParkingService
}

func NewVehicleHandler(parkingService service.ParkingService) *VehicleHandler {
	return &VehicleHandler{parkingService: parkingService}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehiculos")
	vehicles.Use(middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEmployee))
	{
		vehicles.POST("/entrada", h.RegisterEntry)
		vehicles.POST("/salida", h.RegisterExit)
		vehicles.GET("/activos", h.ListActive)
		vehicles.GET("/buscar/:placa", h.FindByPlate)
		vehicles.GET("/historial", h.History)
	}
}

// RegisterEntry admits a vehicle and assigns it a free space.
func (h *VehicleHandler) RegisterEntry(c *gin.Context) {
	var req service.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	var operatorID *uuid.UUID
	if user := middleware.CurrentUser(c); user != nil {
		operatorID = &user.ID
	}

	result, err := h.parkingService.RegisterEntry(c.Request.Context(), operatorID, req)
	if err != nil {
		var inside *service.VehicleInsideError
		switch {
		case errors.Is(err, service.ErrNoSpaceAvailable):
			c.JSON(http.StatusBadRequest, response.Error("No hay espacios disponibles en este momento"))
		case errors.As(err, &inside):
			c.JSON(http.StatusBadRequest, response.ErrorData(
				"Este vehículo ya se encuentra dentro del parqueo",
				gin.H{"espacio": inside.Space, "horaEntrada": inside.EntryTime},
			))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al registrar la entrada"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.OKMessage("Entrada registrada exitosamente", result))
}

// RegisterExit closes the active session and returns the billed amount.
func (h *VehicleHandler) RegisterExit(c *gin.Context) {
	var req service.ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("Datos inválidos", err.Error()))
		return
	}

	result, err := h.parkingService.RegisterExit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, response.Error("Vehículo no encontrado"))
		case errors.Is(err, service.ErrVehicleNotInside):
			c.JSON(http.StatusBadRequest, response.Error("Este vehículo no se encuentra dentro del parqueo"))
		default:
			c.JSON(http.StatusInternalServerError, response.Error("Error al registrar la salida"))
		}
		return
	}

	c.JSON(http.StatusOK, response.OKMessage("Salida registrada exitosamente", result))
}

// ListActive returns every vehicle currently inside.
func (h *VehicleHandler) ListActive(c *gin.Context) {
	result, err := h.parkingService.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al listar vehículos activos"))
		return
	}

	c.JSON(http.StatusOK, response.OK(result))
}

// FindByPlate returns a vehicle and its full session history.
func (h *VehicleHandler) FindByPlate(c *gin.Context) {
	result, err := h.parkingService.FindByPlate(c.Request.Context(), c.Param("placa"))
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, response.Error("Vehículo no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error("Error al buscar el vehículo"))
		return
	}

	c.JSON(http.StatusOK, response.OK(result))
}

// History returns a paginated record list, optionally filtered by day
// via ?fecha=YYYY-MM-DD.
func (h *VehicleHandler) History(c *gin.Context) {
	params := pagination.Parse(c)

	var day *time.Time
	if raw := c.Query("fecha"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error("Fecha inválida, use el formato YYYY-MM-DD"))
			return
		}
		day = &parsed
	}

	result, err := h.parkingService.History(c.Request.Context(), day, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Error al consultar el historial"))
		return
	}

	c.JSON(http.StatusOK, response.OK(result))
}
