package structs

import "errors"

type PlaceOrderRequest struct {
	InstrumentID int64    `json:"instrumentId"`
	UserID       int64    `json:"userId"`
	Side         string   `json:"side"`
	Type         string   `json:"type"`
	Size         *float64 `json:"size,omitempty"`
	CashAmount   *float64 `json:"cashAmount,omitempty"`
	Price        *float64 `json:"price,omitempty"`
}

var (
	ErrInvalidSide         = errors.New("side must be BUY or SELL")
	ErrInvalidType         = errors.New("type must be MARKET or LIMIT")
	ErrLimitRequiresPrice  = errors.New("price is required when type is LIMIT")
	ErrMarketForbidsPrice  = errors.New("price must not be sent when type is MARKET")
	ErrSizeOrCashAmount    = errors.New("exactly one of size or cashAmount must be sent")
	ErrMissingInstrumentID = errors.New("instrumentId is required")
	ErrMissingUserID       = errors.New("userId is required")
)

// Validate enforces the request-shape invariants before the request reaches
// the execution engine.
func (r *PlaceOrderRequest) Validate() error {
	if r.InstrumentID <= 0 {
		return ErrMissingInstrumentID
	}

	if r.UserID <= 0 {
		return ErrMissingUserID
	}

	if r.Side != "BUY" && r.Side != "SELL" {
		return ErrInvalidSide
	}

	switch r.Type {
	case "LIMIT":
		if r.Price == nil {
			return ErrLimitRequiresPrice
		}
	case "MARKET":
		if r.Price != nil {
			return ErrMarketForbidsPrice
		}
	default:
		return ErrInvalidType
	}

	if (r.Size != nil) == (r.CashAmount != nil) {
		return ErrSizeOrCashAmount
	}

	return nil
}
