package models

const (
	PositionSideLong  = "long"
	PositionSideShort = "short"
)

// RawPosition is the unvalued per-instrument aggregate derived from fills.
// QTotal and SumTotal only grow on buys; a sell reduces Q and nothing else,
// so average cost stays the cost basis of shares ever bought.
type RawPosition struct {
	Q        float64
	QTotal   float64
	SumTotal float64
}

type Position struct {
	InstrumentID    int64   `json:"instrumentId"`
	Quantity        float64 `json:"quantity"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	Value           float64 `json:"value"`
	Side            string  `json:"side"`
	Performance     float64 `json:"performance"`
	RealPerformance float64 `json:"realPerformance"`
}

type PortfolioSummary struct {
	TotalValue    float64    `json:"totalValue"`
	AvailableCash float64    `json:"availableCash"`
	Positions     []Position `json:"positions"`
}
