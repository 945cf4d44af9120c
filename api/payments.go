package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/service/payments"
)

type PaymentHandler struct {
	service payments.PaymentUseCase
}

func NewPaymentHandler(service payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router gin.IRouter) {
	router.POST("/api/payments", h.record)
}

func (h *PaymentHandler) record(c *gin.Context) {
	var input payments.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Record(c.Request.Context(), input); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Duplicate payment ID"})
			return
		}
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
