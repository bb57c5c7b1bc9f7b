package http

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Middleware struct {
	appName string
	fiber   *fiber.App
}

func NewMiddleware(appName string, fiber *fiber.App) *Middleware {
	return &Middleware{
		appName: appName,
		fiber:   fiber,
	}
}

func (m *Middleware) Register() {
	m.fiber.Use(recover.New())
	m.useMetrics()
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}
