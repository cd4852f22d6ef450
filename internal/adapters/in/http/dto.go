package http

import (
	"time"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
)

// LocationDTO is the wire shape of a geocoded address.
type LocationDTO struct {
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// NewDonationRequest is the body of POST /donations.
type NewDonationRequest struct {
	FoodType    string      `json:"food_type"`
	Quantity    string      `json:"quantity"`
	PreparedAt  *time.Time  `json:"prepared_at,omitempty"`
	ExpiryDate  time.Time   `json:"expiry_date"`
	Description string      `json:"description,omitempty"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	Location    LocationDTO `json:"location"`
}

// NewOrderRequest is the body of POST /orders.
type NewOrderRequest struct {
	DonationID         string      `json:"donation_id"`
	DietaryPreferences []string    `json:"dietary_preferences,omitempty"`
	DeliveryLocation   LocationDTO `json:"delivery_location"`
}

// AdvanceOrderRequest is the body of PATCH /orders/:id/status.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// RegisterUserRequest is the body of POST /users. ID is optional; one is
// generated when the identity collaborator doesn't supply it.
type RegisterUserRequest struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// IDResponse acknowledges a creation with the new resource identifier.
type IDResponse struct {
	ID string `json:"id"`
}

// DonationResponse is the wire shape of one donation listing.
type DonationResponse struct {
	ID          string      `json:"id"`
	DonorID     string      `json:"donor_id"`
	DonorName   string      `json:"donor_name"`
	FoodType    string      `json:"food_type"`
	Quantity    string      `json:"quantity"`
	PreparedAt  *time.Time  `json:"prepared_at,omitempty"`
	ExpiryDate  time.Time   `json:"expiry_date"`
	Description string      `json:"description,omitempty"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	Location    LocationDTO `json:"location"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toDonationResponse(d queries.ListDonationsQueryResponse) DonationResponse {
	return DonationResponse{
		ID:          d.ID.String(),
		DonorID:     d.DonorID.String(),
		DonorName:   d.DonorName,
		FoodType:    d.FoodType,
		Quantity:    d.Quantity,
		PreparedAt:  d.PreparedAt,
		ExpiryDate:  d.ExpiryDate,
		Description: d.Description,
		PhotoURL:    d.PhotoURL,
		Location: LocationDTO{
			Address: d.Location.Address(),
			City:    d.Location.City(),
			Lat:     d.Location.Lat(),
			Lng:     d.Location.Lng(),
		},
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
	}
}

func toDonationResponses(donations []queries.ListDonationsQueryResponse) []DonationResponse {
	responses := make([]DonationResponse, len(donations))
	for i, d := range donations {
		responses[i] = toDonationResponse(d)
	}
	return responses
}

// OrderResponse is the wire shape of one order.
type OrderResponse struct {
	ID                 string      `json:"id"`
	DonationID         string      `json:"donation_id"`
	RecipientID        string      `json:"recipient_id"`
	RecipientName      string      `json:"recipient_name"`
	DonorID            string      `json:"donor_id"`
	DriverID           *string     `json:"driver_id,omitempty"`
	DriverName         string      `json:"driver_name,omitempty"`
	DietaryPreferences []string    `json:"dietary_preferences,omitempty"`
	PickupLocation     LocationDTO `json:"pickup_location"`
	DeliveryLocation   LocationDTO `json:"delivery_location"`
	Status             string      `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
}

func toOrderResponse(o queries.ListOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID.String(),
		DonationID:         o.DonationID.String(),
		RecipientID:        o.RecipientID.String(),
		RecipientName:      o.RecipientName,
		DonorID:            o.DonorID.String(),
		DriverName:         o.DriverName,
		DietaryPreferences: o.DietaryPreferences,
		PickupLocation: LocationDTO{
			Address: o.PickupLocation.Address(),
			City:    o.PickupLocation.City(),
			Lat:     o.PickupLocation.Lat(),
			Lng:     o.PickupLocation.Lng(),
		},
		DeliveryLocation: LocationDTO{
			Address: o.DeliveryLocation.Address(),
			City:    o.DeliveryLocation.City(),
			Lat:     o.DeliveryLocation.Lat(),
			Lng:     o.DeliveryLocation.Lng(),
		},
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
	}

	if o.DriverID != nil {
		driverID := o.DriverID.String()
		resp.DriverID = &driverID
	}

	return resp
}

func toOrderResponses(orders []queries.ListOrdersQueryResponse) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}

// PlatformStatsResponse is the wire shape of the admin dashboard numbers.
type PlatformStatsResponse struct {
	Donations struct {
		Total     int64 `json:"total"`
		Available int64 `json:"available"`
		Claimed   int64 `json:"claimed"`
		PickedUp  int64 `json:"picked_up"`
		Delivered int64 `json:"delivered"`
	} `json:"donations"`
	Orders struct {
		Total     int64 `json:"total"`
		Pending   int64 `json:"pending"`
		Assigned  int64 `json:"assigned"`
		InTransit int64 `json:"in_transit"`
		Delivered int64 `json:"delivered"`
	} `json:"orders"`
	Users struct {
		Total      int64 `json:"total"`
		Donors     int64 `json:"donors"`
		Recipients int64 `json:"recipients"`
		Drivers    int64 `json:"drivers"`
	} `json:"users"`
}

func toPlatformStatsResponse(stats queries.PlatformStatsQueryResponse) PlatformStatsResponse {
	var resp PlatformStatsResponse
	resp.Donations.Total = stats.Donations.Total
	resp.Donations.Available = stats.Donations.Available
	resp.Donations.Claimed = stats.Donations.Claimed
	resp.Donations.PickedUp = stats.Donations.PickedUp
	resp.Donations.Delivered = stats.Donations.Delivered
	resp.Orders.Total = stats.Orders.Total
	resp.Orders.Pending = stats.Orders.Pending
	resp.Orders.Assigned = stats.Orders.Assigned
	resp.Orders.InTransit = stats.Orders.InTransit
	resp.Orders.Delivered = stats.Orders.Delivered
	resp.Users.Total = stats.Users.Total
	resp.Users.Donors = stats.Users.Donors
	resp.Users.Recipients = stats.Users.Recipients
	resp.Users.Drivers = stats.Users.Drivers
	return resp
}

// ImpactStatsResponse is the wire shape of the public impact numbers.
type ImpactStatsResponse struct {
	MealsRescued int64   `json:"meals_rescued"`
	ActiveDonors int64   `json:"active_donors"`
	CO2SavedKg   float64 `json:"co2_saved_kg"`
	Cities       int64   `json:"cities_served"`
}

func toImpactStatsResponse(stats queries.ImpactStatsQueryResponse) ImpactStatsResponse {
	return ImpactStatsResponse{
		MealsRescued: stats.MealsRescued,
		ActiveDonors: stats.ActiveDonors,
		CO2SavedKg:   stats.CO2SavedKg,
		Cities:       stats.Cities,
	}
}
