package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(
	f *fiber.App,
	orderUseCase OrderUseCase,
	portfolioUseCase PortfolioUseCase,
	instrumentUseCase InstrumentUseCase,
	settingsUseCase SettingsUseCase,
	l *logrus.Logger,
) {
	h := NewHandler(f, orderUseCase, portfolioUseCase, instrumentUseCase, settingsUseCase, l)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)

	router.Post("/orders", h.PlaceOrder)
	router.Patch("/orders/:orderId/cancel", h.CancelOrder)

	router.Get("/portfolio/:id", h.GetPortfolio)

	router.Get("/instruments", h.SearchInstruments)
	router.Put("/instruments/:ticker/settings", h.UpdateInstrumentSettings)
}
