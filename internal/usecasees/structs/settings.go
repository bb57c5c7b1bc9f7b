package structs

import "errors"

var (
	ErrEmptySettingsUpdate  = errors.New("at least one of status or maxOrderSize must be sent")
	ErrInvalidTickerStatus  = errors.New("status must be ENABLED or DISABLED")
	ErrNegativeMaxOrderSize = errors.New("maxOrderSize must not be negative")
)

// UpdateSettingsRequest carries a partial per-ticker trading control update.
// MaxOrderSize 0 clears the cap.
type UpdateSettingsRequest struct {
	Status       *string  `json:"status,omitempty"`
	MaxOrderSize *float64 `json:"maxOrderSize,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if r.Status == nil && r.MaxOrderSize == nil {
		return ErrEmptySettingsUpdate
	}

	if r.Status != nil && *r.Status != "ENABLED" && *r.Status != "DISABLED" {
		return ErrInvalidTickerStatus
	}

	if r.MaxOrderSize != nil && *r.MaxOrderSize < 0 {
		return ErrNegativeMaxOrderSize
	}

	return nil
}
