package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"MoveCleanWeb/models"
	"MoveCleanWeb/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReservationRepository implements repositories.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation models.Reservation) (string, error) {
	args := m.Called(ctx, reservation)
	return args.String(0), args.Error(1)
}

func (m *MockReservationRepository) List(ctx context.Context, limit int) ([]models.Reservation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

// MockMailer implements services.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReservationConfirmation(reservation models.Reservation) error {
	args := m.Called(reservation)
	return args.Error(0)
}

func setupReservationTestRouter(repo *MockReservationRepository, mailer *MockMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetReservationService(services.NewReservationService(repo, mailer))

	router := gin.New()
	router.POST("/api/submit-reservation", SubmitReservation)
	return router
}

func validReservationPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Jan Novák",
		"phone":           "+420777123456",
		"email":           "Jan.Novak@Example.com",
		"message":         "Third floor, no elevator",
		"preferredTime":   "morning",
		"serviceType":     "moving",
		"clinic":          "praha-9",
		"reservationDate": "2026-10-12",
		"locale":          "cs",
	}
}

func postReservation(router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/submit-reservation", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitReservationMissingField(t *testing.T) {
	router := setupReservationTestRouter(new(MockReservationRepository), new(MockMailer))

	payload := validReservationPayload()
	delete(payload, "email")
	w := postReservation(router, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required field: email", resp["error"])
}

func TestSubmitReservationNamesFirstMissingField(t *testing.T) {
	router := setupReservationTestRouter(new(MockReservationRepository), new(MockMailer))

	w := postReservation(router, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required field: name", resp["error"])
}

func TestSubmitReservationInvalidEmail(t *testing.T) {
	router := setupReservationTestRouter(new(MockReservationRepository), new(MockMailer))

	payload := validReservationPayload()
	payload["email"] = "not-an-email"
	w := postReservation(router, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email format", resp["error"])
}

func TestSubmitReservationUnsupportedLocale(t *testing.T) {
	router := setupReservationTestRouter(new(MockReservationRepository), new(MockMailer))

	payload := validReservationPayload()
	payload["locale"] = "de"
	w := postReservation(router, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid locale", resp["error"])
}

func TestSubmitReservationInvalidDate(t *testing.T) {
	router := setupReservationTestRouter(new(MockReservationRepository), new(MockMailer))

	payload := validReservationPayload()
	payload["reservationDate"] = "next tuesday"
	w := postReservation(router, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid reservation date", resp["error"])
}

func TestSubmitReservationSuccess(t *testing.T) {
	repo := new(MockReservationRepository)
	mailer := new(MockMailer)
	router := setupReservationTestRouter(repo, mailer)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r models.Reservation) bool {
		return r.Email == "jan.novak@example.com" &&
			r.Status == models.ReservationStatusPending &&
			!r.CreatedAt.IsZero()
	})).Return("res-123", nil)
	mailer.On("SendReservationConfirmation", mock.Anything).Return(nil)

	w := postReservation(router, validReservationPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "res-123", resp["id"])

	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSubmitReservationEmailFailureStillSucceeds(t *testing.T) {
	repo := new(MockReservationRepository)
	mailer := new(MockMailer)
	router := setupReservationTestRouter(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return("res-456", nil)
	mailer.On("SendReservationConfirmation", mock.Anything).Return(errors.New("smtp connection refused"))

	w := postReservation(router, validReservationPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "res-456", resp["id"])
	mailer.AssertExpectations(t)
}

func TestSubmitReservationPersistenceFailure(t *testing.T) {
	repo := new(MockReservationRepository)
	mailer := new(MockMailer)
	router := setupReservationTestRouter(repo, mailer)

	repo.On("Create", mock.Anything, mock.Anything).Return("", errors.New("firestore unavailable"))

	w := postReservation(router, validReservationPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to submit reservation", resp["error"])
	// No email attempt after a failed write.
	mailer.AssertNotCalled(t, "SendReservationConfirmation", mock.Anything)
}
