package models

import "time"

type MarketData struct {
	ID           int64     `db:"id" json:"id"`
	InstrumentID int64     `db:"instrument_id" json:"instrumentId"`
	Close        float64   `db:"close" json:"close"`
	Date         time.Time `db:"date" json:"date"`
}
