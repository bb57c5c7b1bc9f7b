package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

type TickerStatus string

const (
	Enabled  TickerStatus = "ENABLED"
	Disabled TickerStatus = "DISABLED"
)

func (s TickerStatus) ToString() string {
	return string(s)
}

// Settings is the per-ticker trading control document. MaxOrderSize == 0
// means no cap.
type Settings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Ticker       string             `bson:"ticker" json:"ticker"`
	Status       string             `bson:"status" json:"status"`
	MaxOrderSize float64            `bson:"max_order_size" json:"maxOrderSize"`
}

func (s *Settings) TradingEnabled() bool {
	return s.Status != Disabled.ToString()
}
