package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/service/payments"
)

type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) Record(ctx context.Context, input payments.RecordPaymentInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func paymentRequest(t *testing.T, w *httptest.ResponseRecorder, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/payments", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestPaymentHandler_record(t *testing.T) {
	mockService := &MockPaymentUseCase{}
	handler := NewPaymentHandler(mockService)

	w := httptest.NewRecorder()
	c := paymentRequest(t, w, `{"payment_id":"PAY-ABC","booking_id":42,"amount":3000,"payment_date":"2024-01-03T12:00:00Z"}`)

	mockService.On("Record", c.Request.Context(), mock.AnythingOfType("payments.RecordPaymentInput")).Return(nil)

	handler.record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestPaymentHandler_record_Duplicate(t *testing.T) {
	mockService := &MockPaymentUseCase{}
	handler := NewPaymentHandler(mockService)

	w := httptest.NewRecorder()
	c := paymentRequest(t, w, `{"payment_id":"PAY-ABC","booking_id":42,"amount":3000,"payment_date":"2024-01-03T12:00:00Z"}`)

	mockService.On("Record", c.Request.Context(), mock.Anything).
		Return(&domain.ConflictError{Message: "Duplicate payment ID"})

	handler.record(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate payment ID")
}

func TestPaymentHandler_record_MissingFields(t *testing.T) {
	mockService := &MockPaymentUseCase{}
	handler := NewPaymentHandler(mockService)

	w := httptest.NewRecorder()
	c := paymentRequest(t, w, `{"amount":3000}`)

	mockService.On("Record", c.Request.Context(), mock.Anything).
		Return(&domain.ValidationError{Fields: []string{"payment_id", "booking_id", "payment_date"}})

	handler.record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
