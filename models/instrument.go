package models

const (
	InstrumentTypeEquity = "EQUITY"
	InstrumentTypeCash   = "CASH"
)

// CashTicker is the designated cash instrument acting as the ledger's
// unit of account.
const CashTicker = "ARS"

type Instrument struct {
	ID     int64  `db:"id" json:"id"`
	Ticker string `db:"ticker" json:"ticker"`
	Name   string `db:"name" json:"name"`
	Type   string `db:"type" json:"type"`
}
