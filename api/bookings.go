package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
	env     string
}

func NewBookingHandler(service booking.BookingUseCase, env string) *BookingHandler {
	return &BookingHandler{service: service, env: env}
}

func (h *BookingHandler) Register(router gin.IRouter) {
	router.POST("/bookings", h.create)
	router.PUT("/bookings/:bookingId/complete", h.complete)
	router.PUT("/bookings/:bookingId/cancel", h.cancel)
}

// RegisterDrafts wires the draft endpoints; the caller passes an auth-guarded
// group.
func (h *BookingHandler) RegisterDrafts(router gin.IRouter) {
	router.POST("", h.createDraft)
	router.GET("/:token", h.getDraft)
}

type createDraftRequest struct {
	VehicleID     string `json:"vehicleId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	PickupState   string `json:"pickupState"`
	PickupPlace   string `json:"pickupPlace"`
	DropoffState  string `json:"dropoffState"`
	DropoffPlace  string `json:"dropoffPlace"`
	PickupDate    string `json:"pickupDate"`
	DropoffDate   string `json:"dropoffDate"`
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, errorStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"bookingId":   result.BookingID,
		"customerId":  result.CustomerID,
		"totalAmount": result.TotalAmount,
		"rentalDays":  result.RentalDays,
		"message":     "Booking successfully created",
	})
}

func (h *BookingHandler) complete(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid booking id"})
		return
	}

	result, err := h.service.Complete(c.Request.Context(), bookingID)
	if err != nil {
		// completion failures surface as 400 regardless of cause, except
		// genuine store errors
		status := http.StatusBadRequest
		if errorStatus(err) == http.StatusInternalServerError {
			status = http.StatusInternalServerError
		}
		h.fail(c, status, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking completed successfully",
		"updated": gin.H{
			"bookingId": result.BookingID,
			"vehicleId": result.VehicleID,
			"newStatus": result.NewStatus,
		},
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid booking id"})
		return
	}

	id, err := h.service.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		h.fail(c, errorStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"bookingId": id,
		"message":   "Booking cancelled successfully",
	})
}

func (h *BookingHandler) createDraft(c *gin.Context) {
	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	draft := domain.BookingDraft{
		VehicleID:     req.VehicleID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PickupState:   req.PickupState,
		PickupPlace:   req.PickupPlace,
		DropoffState:  req.DropoffState,
		DropoffPlace:  req.DropoffPlace,
	}
	if t, err := parseDate(req.PickupDate); err == nil {
		draft.PickupDate = t
	}
	if t, err := parseDate(req.DropoffDate); err == nil {
		draft.DropoffDate = t
	}

	token, err := h.service.CreateDraft(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, errorStatus(err), err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token})
}

func (h *BookingHandler) getDraft(c *gin.Context) {
	draft, err := h.service.GetDraft(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.fail(c, errorStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) fail(c *gin.Context, status int, err error) {
	body := gin.H{"success": false}
	message := err.Error()
	if status == http.StatusInternalServerError {
		// storage diagnostics leave the process only outside production
		message = "An unexpected error occurred"
		if h.env != "production" {
			message = "Database error: " + err.Error()
			body["details"] = err.Error()
		}
	}
	body["message"] = message
	c.JSON(status, body)
}
