package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

func (a *App) initTgBot() error {
	bot, err := tgbotapi.NewBotAPI(a.Config.TelegramApiToken)
	if err != nil {
		return errors.Wrap(err, "telegram bot auth")
	}

	a.TGM = bot

	return nil
}
