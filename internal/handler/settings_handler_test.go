package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parking/internal/handler"
	"parking/internal/middleware"
	"parking/internal/mocks"
	"parking/internal/model"
	"parking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubSettingsService struct{}

func (s *stubSettingsService) SystemConfig(ctx context.Context) (map[string]string, error) {
	return map[string]string{"espacios_totales": "20"}, nil
}

func (s *stubSettingsService) UpdateConfig(ctx context.Context, key, value string) error {
	return nil
}

func (s *stubSettingsService) UpdateTotalSpaces(ctx context.Context, count int) error {
	return nil
}

func (s *stubSettingsService) ListFields(ctx context.Context) ([]model.FormField, error) {
	return []model.FormField{}, nil
}

func (s *stubSettingsService) CreateField(ctx context.Context, req service.FieldRequest) (*model.FormField, error) {
	return &model.FormField{}, nil
}

func (s *stubSettingsService) UpdateField(ctx context.Context, id uuid.UUID, req service.FieldRequest) (*model.FormField, error) {
	return &model.FormField{}, nil
}

func (s *stubSettingsService) DeactivateField(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubSettingsService) ListTariffs(ctx context.Context) ([]model.Tariff, error) {
	return []model.Tariff{}, nil
}

func (s *stubSettingsService) TariffHistory(ctx context.Context) ([]model.Tariff, error) {
	return []model.Tariff{}, nil
}

func (s *stubSettingsService) ReplaceTariff(ctx context.Context, id uuid.UUID, price float64) (*model.Tariff, error) {
	return &model.Tariff{}, nil
}

func (s *stubSettingsService) ListSpaces(ctx context.Context) ([]model.Space, error) {
	return []model.Space{}, nil
}

func (s *stubSettingsService) UpdateSpaceState(ctx context.Context, number, state string) error {
	return nil
}

// settingsRouter wires the real route registration so the group
// middleware chain is part of what gets tested.
func settingsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.NewSettingsHandler(&stubSettingsService{}).RegisterRoutes(api)
	return router
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()

	userID := uuid.New()
	repo := new(mocks.UserRepository)
	repo.On("GetByID", mock.Anything, userID.String()).Return(&model.User{
		ID:     userID,
		Role:   role,
		Active: true,
	}, nil)
	middleware.InitAuth(repo)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"rol": role,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("clave-de-prueba"))
	assert.NoError(t, err)
	return token
}

func TestConfigReadRoutesRejectEmployee(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")

	router := settingsRouter()
	token := tokenForRole(t, model.RoleEmployee)

	paths := []string{
		"/api/configuracion/sistema",
		"/api/configuracion/campos",
		"/api/configuracion/tarifas",
		"/api/configuracion/espacios",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Contains(t, w.Body.String(), "No tiene permisos", path)
	}
}

func TestConfigReadRoutesAllowAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")

	router := settingsRouter()
	token := tokenForRole(t, model.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/configuracion/sistema", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "espacios_totales")
}
