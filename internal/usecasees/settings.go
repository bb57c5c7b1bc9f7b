package usecasees

import (
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	repoMongo "github.com/julimen5/cocos-challenge/internal/repository/mongo"
	mongoStructs "github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"
)

type settingsUseCase struct {
	settingsRepo repoMongo.SettingsRepo

	logger *logrus.Logger
}

func NewSettingsUseCase(
	settingsRepo repoMongo.SettingsRepo,
	logger *logrus.Logger,
) *settingsUseCase {
	return &settingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetTickerSettings materializes the permissive default for tickers that have
// no settings document, mirroring what the execution engine assumes.
func (u *settingsUseCase) GetTickerSettings(ticker string) (*mongoStructs.Settings, error) {
	settings, err := u.settingsRepo.Load(ticker)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &mongoStructs.Settings{
				Ticker: ticker,
				Status: mongoStructs.Enabled.ToString(),
			}, nil
		}

		u.logger.WithField("ticker", ticker).WithError(err).Error("load ticker settings")
		return nil, err
	}

	return settings, nil
}

func (u *settingsUseCase) SetTickerStatus(ticker string, status mongoStructs.TickerStatus) error {
	if err := u.settingsRepo.UpdateStatus(ticker, status); err != nil {
		u.logger.WithField("ticker", ticker).WithError(err).Error("update ticker status")
		return err
	}

	return nil
}

func (u *settingsUseCase) SetMaxOrderSize(ticker string, maxOrderSize float64) error {
	if err := u.settingsRepo.UpdateMaxOrderSize(ticker, maxOrderSize); err != nil {
		u.logger.WithField("ticker", ticker).WithError(err).Error("update max order size")
		return err
	}

	return nil
}
