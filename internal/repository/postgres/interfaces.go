package postgres

import (
	"time"

	"github.com/julimen5/cocos-challenge/models"
)

//go:generate mockery --case=snake --name=OrderStore
//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=InstrumentRepo
//go:generate mockery --case=snake --name=MarketDataRepo

// OrderStore is the subset of order persistence that can run either against
// the pool or inside a transaction handed out by OrderRepo.Serialized.
type OrderStore interface {
	Store(m *models.Order) error
	StorePair(primary, cashLeg *models.Order) error
	GetFilledEquityOrders(userID int64, instrumentID *int64) ([]models.Order, error)
	GetFilledCashOrders(userID int64) ([]models.Order, error)
}

type OrderRepo interface {
	OrderStore
	GetByID(id int64) (*models.Order, error)
	UpdateStatus(id int64, status string, at time.Time) error
	Serialized(userID int64, fn func(OrderStore) error) error
}

type InstrumentRepo interface {
	GetByID(id int64) (*models.Instrument, error)
	GetCashInstrument(ticker string) (*models.Instrument, error)
	Search(query string, limit, offset int) ([]models.Instrument, int64, error)
}

type MarketDataRepo interface {
	GetLatest(instrumentID int64, instrumentType string) (*models.MarketData, error)
	GetLatestBatch(instrumentIDs []int64) ([]models.MarketData, error)
}
