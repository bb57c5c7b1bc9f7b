package usecasees

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/julimen5/cocos-challenge/internal/repository/postgres"
	"github.com/julimen5/cocos-challenge/models"
)

type priceUseCase struct {
	marketDataRepo postgres.MarketDataRepo

	logger *logrus.Logger
}

func NewPriceUseCase(
	marketDataRepo postgres.MarketDataRepo,
	logger *logrus.Logger,
) *priceUseCase {
	return &priceUseCase{
		marketDataRepo: marketDataRepo,
		logger:         logger,
	}
}

// LatestPrice returns the most recent close for the instrument, optionally
// restricted to an instrument type. Absence maps to ErrNoMarketData, never to
// a zero price.
func (u *priceUseCase) LatestPrice(instrumentID int64, instrumentType string) (*models.MarketData, error) {
	md, err := u.marketDataRepo.GetLatest(instrumentID, instrumentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoMarketData
		}

		return nil, err
	}

	return md, nil
}

// LatestPrices resolves the latest close for each instrument in one query.
// Instruments with no market data are simply absent from the result.
func (u *priceUseCase) LatestPrices(instrumentIDs []int64) (map[int64]models.MarketData, error) {
	rows, err := u.marketDataRepo.GetLatestBatch(instrumentIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]models.MarketData, len(rows))
	for _, md := range rows {
		out[md.InstrumentID] = md
	}

	return out, nil
}
