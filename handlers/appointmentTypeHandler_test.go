package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ClinicaViva/middlewares"
	"ClinicaViva/models"
	"ClinicaViva/services"
	"ClinicaViva/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubTypeStore struct {
	byID map[string]*models.AppointmentType
}

func (s *stubTypeStore) Create(ctx context.Context, appointmentType *models.AppointmentType) error {
	return nil
}

func (s *stubTypeStore) GetByID(ctx context.Context, userID int64, id string) (*models.AppointmentType, error) {
	return s.byID[id], nil
}

func (s *stubTypeStore) GetAll(ctx context.Context, userID int64) ([]models.AppointmentType, error) {
	return nil, nil
}

func (s *stubTypeStore) Update(ctx context.Context, appointmentType *models.AppointmentType) error {
	return nil
}

func (s *stubTypeStore) Delete(ctx context.Context, userID int64, id string) error {
	return nil
}

type stubTypeUsage struct{}

func (stubTypeUsage) ExistsForType(ctx context.Context, userID int64, typeID string) (bool, error) {
	return false, nil
}

func appointmentTypeRouter(store *stubTypeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewAppointmentTypeService(store, stubTypeUsage{})
	handler := NewAppointmentTypeHandler(service)

	router := gin.New()
	router.GET("/appointment_types/:type_id", middlewares.TokenAuthMiddleware(), handler.GetAppointmentTypeByID)
	return router
}

func TestGetAppointmentTypeByIDNotFound(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := utils.GenerateAccessToken("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := appointmentTypeRouter(&stubTypeStore{})
	req := httptest.NewRequest(http.MethodGet, "/appointment_types/missing?accessToken="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing appointment type, got %d: %s", w.Code, w.Body.String())
	}
	if strings.TrimSpace(w.Body.String()) == "null" {
		t.Fatal("missing appointment type must not be served as a null body")
	}
}

func TestGetAppointmentTypeByIDFound(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := utils.GenerateAccessToken("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := &stubTypeStore{byID: map[string]*models.AppointmentType{
		"type-1": {ID: "type-1", Name: "Limpeza", Value: decimal.RequireFromString("90.00"), UserID: 7},
	}}
	router := appointmentTypeRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/appointment_types/type-1?accessToken="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Limpeza") {
		t.Fatalf("expected appointment type in body, got %s", w.Body.String())
	}
}
