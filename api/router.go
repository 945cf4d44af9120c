package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Bookings *BookingHandler
	Vehicles *VehicleHandler
	Payments *PaymentHandler
	Licenses *LicenseHandler
	Auth     *AuthHandler
}

// NewRouter assembles the full HTTP surface. Draft endpoints sit behind the
// JWT middleware; everything else matches the original public surface.
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.Bookings.Register(router)
	h.Vehicles.Register(router)
	h.Payments.Register(router)
	h.Licenses.Register(router)
	h.Auth.Register(router)

	drafts := router.Group("/api/drafts", AuthRequired(jwtSecret))
	h.Bookings.RegisterDrafts(drafts)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return router
}
