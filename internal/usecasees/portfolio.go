package usecasees

import (
	"github.com/sirupsen/logrus"

	"github.com/julimen5/cocos-challenge/internal/repository/postgres"
	"github.com/julimen5/cocos-challenge/models"
)

type portfolioUseCase struct {
	orderRepo postgres.OrderRepo

	priceUseCase *priceUseCase

	logger *logrus.Logger
}

func NewPortfolioUseCase(
	orderRepo postgres.OrderRepo,
	priceUseCase *priceUseCase,
	logger *logrus.Logger,
) *portfolioUseCase {
	return &portfolioUseCase{
		orderRepo:    orderRepo,
		priceUseCase: priceUseCase,
		logger:       logger,
	}
}

func (u *portfolioUseCase) AvailableCash(userID int64) (float64, error) {
	fills, err := u.orderRepo.GetFilledCashOrders(userID)
	if err != nil {
		return 0, err
	}

	return availableCash(fills), nil
}

// GetPortfolio recomputes the whole snapshot from the FILLED order history on
// every call. Any sub-call failure propagates; no partial portfolio is
// returned.
func (u *portfolioUseCase) GetPortfolio(userID int64) (*models.PortfolioSummary, error) {
	log := u.logger.WithField("userId", userID)

	cash, err := u.AvailableCash(userID)
	if err != nil {
		log.WithError(err).Error("available cash")
		return nil, err
	}

	fills, err := u.orderRepo.GetFilledEquityOrders(userID, nil)
	if err != nil {
		log.WithError(err).Error("equity fills")
		return nil, err
	}

	raw := aggregatePositions(fills)

	instrumentIDs := make([]int64, 0, len(raw))
	for id := range raw {
		instrumentIDs = append(instrumentIDs, id)
	}

	prices, err := u.priceUseCase.LatestPrices(instrumentIDs)
	if err != nil {
		log.WithError(err).Error("latest prices")
		return nil, err
	}

	positions := valuePositions(raw, prices)

	total := cash
	for _, p := range positions {
		total += p.Value
	}

	return &models.PortfolioSummary{
		TotalValue:    total,
		AvailableCash: cash,
		Positions:     positions,
	}, nil
}
