package models

import "time"

const (
	SideBuy     = "BUY"
	SideSell    = "SELL"
	SideCashIn  = "CASH_IN"
	SideCashOut = "CASH_OUT"

	OrderTypeMarket = "MARKET"
	OrderTypeLimit  = "LIMIT"

	OrderStatusNew       = "NEW"
	OrderStatusFilled    = "FILLED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRejected  = "REJECTED"
)

// Order is the only mutable ledger record. Positions and cash balance are
// derived exclusively by replaying FILLED orders; there is no separate
// balance or position table. For CASH_IN/CASH_OUT rows Size holds a currency
// amount and Price is always 1; for BUY/SELL rows Size holds shares.
type Order struct {
	ID           int64     `db:"id" json:"id"`
	SessionID    string    `db:"session_id" json:"sessionId"`
	InstrumentID int64     `db:"instrument_id" json:"instrumentId"`
	UserID       int64     `db:"user_id" json:"userId"`
	Side         string    `db:"side" json:"side"`
	Type         string    `db:"type" json:"type"`
	Size         float64   `db:"size" json:"size"`
	Price        *float64  `db:"price" json:"price"`
	Status       string    `db:"status" json:"status"`
	Reason       *string   `db:"reason" json:"reason,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
