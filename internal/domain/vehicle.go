package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusUnavailable VehicleStatus = "Unavailable"
)

type Vehicle struct {
	ID                 int64
	RegistrationNumber string
	Make               string
	Model              string
	Year               int
	VehicleType        string
	FuelType           string
	Transmission       string
	Seats              int
	PricePerDay        int64
	Status             VehicleStatus
	ImageURL           string
}

// VehicleFilter narrows the available-vehicle listing. Zero value means no
// filtering. PriceRange is either "min-max" (inclusive) or "N+".
type VehicleFilter struct {
	FuelType     string
	Transmission string
	VehicleType  string
	PriceRange   string
}

func (f VehicleFilter) IsZero() bool {
	return f.FuelType == "" && f.Transmission == "" && f.VehicleType == "" && f.PriceRange == ""
}

type ServiceLocation struct {
	State        string `json:"-"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type"`
}
