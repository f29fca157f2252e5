package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parking/internal/handler"
	"parking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuthService returns canned results for handler tests.
type stubAuthService struct {
	loginResult *service.LoginResponse
	loginErr    error
}

func (s *stubAuthService) Login(ctx context.Context, req service.LoginRequest) (*service.LoginResponse, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Register(ctx context.Context, req service.RegisterRequest) (*service.UserResponse, error) {
	return &service.UserResponse{Name: req.Name, Email: req.Email}, nil
}

func loginRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", handler.NewAuthHandler(svc).Login)
	return router
}

func TestLoginHandlerSuccess(t *testing.T) {
	router := loginRouter(&stubAuthService{
		loginResult: &service.LoginResponse{
			Token: "un-token",
			User:  service.UserResponse{Name: "Ana", Email: "ana@parqueito.com", Role: "admin"},
		},
	})

	body := `{"email":"ana@parqueito.com","password":"secreto123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Name string `json:"nombre"`
			} `json:"user"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "un-token", resp.Data.Token)
	assert.Equal(t, "Ana", resp.Data.User.Name)
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	router := loginRouter(&stubAuthService{loginErr: service.ErrInvalidCredentials})

	body := `{"email":"ana@parqueito.com","password":"incorrecta"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Credenciales inválidas", resp.Message)
}

func TestLoginHandlerRejectsMalformedBody(t *testing.T) {
	router := loginRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"no-es-correo"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
