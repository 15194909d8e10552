package request

// IsAvailable is a pointer so that an explicit false passes binding.
type SetBoatAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}
