package mongo

import (
	"github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"
)

//go:generate mockery --case=snake --name=SettingsRepo

type SettingsRepo interface {
	Load(ticker string) (*structs.Settings, error)
	UpdateStatus(ticker string, status structs.TickerStatus) error
	UpdateMaxOrderSize(ticker string, maxOrderSize float64) error
}
