package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parking/internal/handler"
	"parking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubParkingService struct {
	entryResult *service.EntryResponse
	entryErr    error
	exitResult  *service.ExitResponse
	exitErr     error
}

func (s *stubParkingService) RegisterEntry(ctx context.Context, operatorID *uuid.UUID, req service.EntryRequest) (*service.EntryResponse, error) {
	return s.entryResult, s.entryErr
}

func (s *stubParkingService) RegisterExit(ctx context.Context, req service.ExitRequest) (*service.ExitResponse, error) {
	return s.exitResult, s.exitErr
}

func (s *stubParkingService) ListActive(ctx context.Context) (*service.ActiveList, error) {
	return &service.ActiveList{Count: 0, Vehicles: []service.ActiveVehicle{}}, nil
}

func (s *stubParkingService) FindByPlate(ctx context.Context, plate string) (*service.VehicleHistory, error) {
	return nil, service.ErrVehicleNotFound
}

func (s *stubParkingService) History(ctx context.Context, day *time.Time, page, limit int) (*service.HistoryPage, error) {
	return &service.HistoryPage{Records: []service.HistoryRow{}}, nil
}

func vehicleRouter(svc service.ParkingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handler.NewVehicleHandler(svc)
	router.POST("/api/vehiculos/entrada", h.RegisterEntry)
	router.POST("/api/vehiculos/salida", h.RegisterExit)
	router.GET("/api/vehiculos/buscar/:placa", h.FindByPlate)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestEntryHandlerValidation(t *testing.T) {
	router := vehicleRouter(&stubParkingService{})

	// missing marca/modelo/color
	w := postJSON(router, "/api/vehiculos/entrada", `{"placa":"ABC123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// plate below minimum length
	w = postJSON(router, "/api/vehiculos/entrada", `{"placa":"AB","marca":"Toyota","modelo":"Corolla","color":"Rojo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntryHandlerNoSpace(t *testing.T) {
	router := vehicleRouter(&stubParkingService{entryErr: service.ErrNoSpaceAvailable})

	w := postJSON(router, "/api/vehiculos/entrada", `{"placa":"ABC123","marca":"Toyota","modelo":"Corolla","color":"Rojo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No hay espacios disponibles en este momento", resp.Message)
}

func TestEntryHandlerVehicleAlreadyInside(t *testing.T) {
	router := vehicleRouter(&stubParkingService{entryErr: &service.VehicleInsideError{
		Space:     "A02",
		EntryTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}})

	w := postJSON(router, "/api/vehiculos/entrada", `{"placa":"ABC123","marca":"Toyota","modelo":"Corolla","color":"Rojo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Space string `json:"espacio"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Este vehículo ya se encuentra dentro del parqueo", resp.Message)
	assert.Equal(t, "A02", resp.Data.Space)
}

func TestExitHandlerNotInside(t *testing.T) {
	router := vehicleRouter(&stubParkingService{exitErr: service.ErrVehicleNotInside})

	w := postJSON(router, "/api/vehiculos/salida", `{"placa":"ABC123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Este vehículo no se encuentra dentro del parqueo", resp.Message)
}

func TestFindByPlateNotFound(t *testing.T) {
	router := vehicleRouter(&stubParkingService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/vehiculos/buscar/NOPE99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
