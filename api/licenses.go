package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vehrenweb/rentals/internal/service/licenses"
)

type LicenseHandler struct {
	service licenses.LicenseUseCase
}

func NewLicenseHandler(service licenses.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{service: service}
}

func (h *LicenseHandler) Register(router gin.IRouter) {
	router.POST("/api/verify-license", h.verify)
}

func (h *LicenseHandler) verify(c *gin.Context) {
	var input licenses.VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	verificationID, err := h.service.Verify(c.Request.Context(), input)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verificationId": verificationID})
}
