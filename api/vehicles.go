package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vehrenweb/rentals/internal/domain"
	"github.com/vehrenweb/rentals/internal/service/vehicles"
)

type VehicleHandler struct {
	service vehicles.VehicleUseCase
}

type vehicleResponse struct {
	RegistrationNumber string `json:"registration_number"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	VehicleType        string `json:"vehicle_type"`
	Status             string `json:"status"`
	RentalPricePerDay  int64  `json:"rental_price_per_day"`
	ImageURL           string `json:"image_url"`
	FuelType           string `json:"fuel_type"`
	Seats              int    `json:"seats"`
	Transmission       string `json:"transmission"`
}

func NewVehicleHandler(service vehicles.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) Register(router gin.IRouter) {
	router.GET("/vehicles", h.list)
	router.GET("/getLocations/:state", h.locations)
}

func (h *VehicleHandler) list(c *gin.Context) {
	filter := domain.VehicleFilter{
		FuelType:     c.Query("fuelType"),
		Transmission: c.Query("transmission"),
		VehicleType:  c.Query("vehicleType"),
		PriceRange:   c.Query("priceRange"),
	}

	listed, err := h.service.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if len(listed) == 0 {
		// empty result is a distinct signal, not a transport error
		c.JSON(http.StatusNotFound, gin.H{"message": "No vehicles found"})
		return
	}

	out := make([]vehicleResponse, 0, len(listed))
	for _, v := range listed {
		out = append(out, vehicleResponse{
			RegistrationNumber: v.RegistrationNumber,
			Make:               v.Make,
			Model:              v.Model,
			Year:               v.Year,
			VehicleType:        v.VehicleType,
			Status:             string(v.Status),
			RentalPricePerDay:  v.PricePerDay,
			ImageURL:           "/images/" + v.ImageURL,
			FuelType:           v.FuelType,
			Seats:              v.Seats,
			Transmission:       v.Transmission,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *VehicleHandler) locations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context(), c.Param("state"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locations)
}
