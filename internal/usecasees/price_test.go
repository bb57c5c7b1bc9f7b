package usecasees

import (
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	pgMocks "github.com/julimen5/cocos-challenge/internal/repository/postgres/mocks"
	"github.com/julimen5/cocos-challenge/models"
)

func Test_PriceUseCase_LatestPrice(t *testing.T) {
	t.Run("returns the latest close", func(t *testing.T) {
		repo := &pgMocks.MarketDataRepo{}
		repo.On("GetLatest", int64(1), models.InstrumentTypeEquity).
			Return(&models.MarketData{InstrumentID: 1, Close: 148}, nil)

		u := NewPriceUseCase(repo, logrus.New())

		md, err := u.LatestPrice(1, models.InstrumentTypeEquity)
		assert.NoError(t, err)
		assert.Equal(t, float64(148), md.Close)
	})

	t.Run("absence maps to ErrNoMarketData", func(t *testing.T) {
		repo := &pgMocks.MarketDataRepo{}
		repo.On("GetLatest", int64(1), models.InstrumentTypeEquity).
			Return(nil, sql.ErrNoRows)

		u := NewPriceUseCase(repo, logrus.New())

		_, err := u.LatestPrice(1, models.InstrumentTypeEquity)
		assert.ErrorIs(t, err, ErrNoMarketData)
	})

	t.Run("storage errors pass through untouched", func(t *testing.T) {
		repo := &pgMocks.MarketDataRepo{}
		storageErr := errors.New("connection reset")
		repo.On("GetLatest", int64(1), "").Return(nil, storageErr)

		u := NewPriceUseCase(repo, logrus.New())

		_, err := u.LatestPrice(1, "")
		assert.ErrorIs(t, err, storageErr)
	})
}

func Test_PriceUseCase_LatestPrices(t *testing.T) {
	repo := &pgMocks.MarketDataRepo{}
	repo.On("GetLatestBatch", []int64{1, 2, 3}).Return([]models.MarketData{
		{InstrumentID: 1, Close: 148},
		{InstrumentID: 3, Close: 52.5},
	}, nil)

	u := NewPriceUseCase(repo, logrus.New())

	prices, err := u.LatestPrices([]int64{1, 2, 3})
	assert.NoError(t, err)

	assert.Len(t, prices, 2)
	assert.Equal(t, float64(148), prices[1].Close)
	assert.Equal(t, float64(52.5), prices[3].Close)

	_, ok := prices[2]
	assert.False(t, ok)
}
