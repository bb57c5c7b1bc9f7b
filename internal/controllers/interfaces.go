package controllers

//go:generate mockery --case=snake --name=TgmCtrl

type TgmCtrl interface {
	Send(text string) error
}
