package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	mongoStructs "github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"
	"github.com/julimen5/cocos-challenge/internal/usecasees"
	"github.com/julimen5/cocos-challenge/internal/usecasees/structs"
	"github.com/julimen5/cocos-challenge/models"
)

const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeConflict   = "CONFLICT"
	codeInternal   = "INTERNAL_ERROR"
)

type OrderUseCase interface {
	PlaceOrder(req *structs.PlaceOrderRequest) (*models.Order, error)
	CancelOrder(orderID int64) (*models.Order, error)
}

type PortfolioUseCase interface {
	GetPortfolio(userID int64) (*models.PortfolioSummary, error)
}

type InstrumentUseCase interface {
	Search(query string, page, pageSize int) ([]models.Instrument, int64, error)
}

type SettingsUseCase interface {
	GetTickerSettings(ticker string) (*mongoStructs.Settings, error)
	SetTickerStatus(ticker string, status mongoStructs.TickerStatus) error
	SetMaxOrderSize(ticker string, maxOrderSize float64) error
}

type Handler struct {
	fiber *fiber.App

	orderUseCase      OrderUseCase
	portfolioUseCase  PortfolioUseCase
	instrumentUseCase InstrumentUseCase
	settingsUseCase   SettingsUseCase

	logger *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	orderUseCase OrderUseCase,
	portfolioUseCase PortfolioUseCase,
	instrumentUseCase InstrumentUseCase,
	settingsUseCase SettingsUseCase,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:             f,
		orderUseCase:      orderUseCase,
		portfolioUseCase:  portfolioUseCase,
		instrumentUseCase: instrumentUseCase,
		settingsUseCase:   settingsUseCase,
		logger:            logger,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// PlaceOrder returns 201 even for REJECTED orders: the rejection reason
// travels inside the success envelope.
func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	var req structs.PlaceOrderRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("malformed request body", codeValidation))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error(), codeValidation))
	}

	order, err := h.orderUseCase.PlaceOrder(&req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse(order))
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("orderId must be numeric", codeValidation))
	}

	order, err := h.orderUseCase.CancelOrder(int64(orderID))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(successResponse(order))
}

func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("user id must be numeric", codeValidation))
	}

	portfolio, err := h.portfolioUseCase.GetPortfolio(int64(userID))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(successResponse(portfolio))
}

func (h *Handler) SearchInstruments(c *fiber.Ctx) error {
	query := c.Query("query")
	page, pageSize := usecasees.ClampPaging(c.QueryInt("page", 1), c.QueryInt("pageSize", usecasees.DefaultPageSize))

	instruments, total, err := h.instrumentUseCase.Search(query, page, pageSize)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(successResponseWithMetadata(instruments, pagingMetadata(page, total, pageSize)))
}

// UpdateInstrumentSettings flips the per-ticker trading controls the
// execution engine checks before taking the ledger lock. Partial updates:
// only the fields sent change.
func (h *Handler) UpdateInstrumentSettings(c *fiber.Ctx) error {
	ticker := c.Params("ticker")

	var req structs.UpdateSettingsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("malformed request body", codeValidation))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error(), codeValidation))
	}

	if req.Status != nil {
		if err := h.settingsUseCase.SetTickerStatus(ticker, mongoStructs.TickerStatus(*req.Status)); err != nil {
			return h.mapError(c, err)
		}
	}

	if req.MaxOrderSize != nil {
		if err := h.settingsUseCase.SetMaxOrderSize(ticker, *req.MaxOrderSize); err != nil {
			return h.mapError(c, err)
		}
	}

	settings, err := h.settingsUseCase.GetTickerSettings(ticker)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(successResponse(settings))
}

// mapError classifies typed errors; everything else is a 500 with a generic
// message so internals never leak.
func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecasees.ErrOrderNotFound),
		errors.Is(err, usecasees.ErrInstrumentNotFound),
		errors.Is(err, usecasees.ErrNoMarketData):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse(err.Error(), codeNotFound))
	case errors.Is(err, usecasees.ErrOrderNotCancellable):
		return c.Status(fiber.StatusConflict).JSON(errorResponse(err.Error(), codeConflict))
	}

	h.logger.WithError(err).Error(c.Path())

	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("internal server error", codeInternal))
}
