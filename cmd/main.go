package main

import (
	"flag"
	"strconv"

	"github.com/gofiber/fiber/v2"

	httpapi "github.com/julimen5/cocos-challenge/internal/api/http"
	"github.com/julimen5/cocos-challenge/internal/controllers"
	repoMongo "github.com/julimen5/cocos-challenge/internal/repository/mongo"
	"github.com/julimen5/cocos-challenge/internal/repository/postgres"
	"github.com/julimen5/cocos-challenge/internal/usecasees"
)

const appName = "broker-api"

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.Name = appName

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.initLoki(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	app.InitMetrics()

	chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	orderRepo := postgres.NewOrderRepository(app.DB)
	instrumentRepo := postgres.NewInstrumentRepository(app.DB)
	marketDataRepo := postgres.NewMarketDataRepository(app.DB)
	settingsRepo := repoMongo.NewSettingsRepository(app.Mongo)

	tgmController := controllers.NewTgmController(app.TGM, chatID)

	priceUseCase := usecasees.NewPriceUseCase(
		marketDataRepo,
		app.Logger,
	)

	portfolioUseCase := usecasees.NewPortfolioUseCase(
		orderRepo,
		priceUseCase,
		app.Logger,
	)

	orderUseCase := usecasees.NewOrderUseCase(
		orderRepo,
		instrumentRepo,
		settingsRepo,
		tgmController,
		priceUseCase,
		app.Metrics.Order,
		app.PromTail,
		app.Logger,
	)

	instrumentUseCase := usecasees.NewInstrumentUseCase(
		instrumentRepo,
		app.Logger,
	)

	settingsUseCase := usecasees.NewSettingsUseCase(
		settingsRepo,
		app.Logger,
	)

	f := fiber.New()

	httpapi.NewMiddleware(appName, f).Register()
	httpapi.RegisterHTTPEndpoints(f, orderUseCase, portfolioUseCase, instrumentUseCase, settingsUseCase, app.Logger)

	if err := f.Listen(":" + app.Config.HTTPPort); err != nil {
		app.Logger.Fatal(err)
	}
}
