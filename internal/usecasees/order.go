package usecasees

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/ic2hrmk/promtail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/julimen5/cocos-challenge/internal/controllers"
	repoMongo "github.com/julimen5/cocos-challenge/internal/repository/mongo"
	mongoStructs "github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"
	"github.com/julimen5/cocos-challenge/internal/repository/postgres"
	"github.com/julimen5/cocos-challenge/internal/usecasees/structs"
	"github.com/julimen5/cocos-challenge/models"
)

// Rejection reasons persisted on REJECTED orders. Rejections are business
// outcomes recorded in the ledger, not errors.
const (
	ReasonNoPrice              = "No price found for instrument"
	ReasonInsufficientFunds    = "Insufficient funds"
	ReasonCashTooLowBuy        = "Cash amount too low to buy any shares"
	ReasonNoPosition           = "No position found for instrument"
	ReasonCashTooLowSell       = "Cash amount too low to sell any shares"
	ReasonInsufficientPosition = "Insufficient position"
	ReasonTradingDisabled      = "Trading disabled for instrument"
	ReasonMaxOrderSize         = "Order size exceeds instrument limit"
)

type orderUseCase struct {
	orderRepo      postgres.OrderRepo
	instrumentRepo postgres.InstrumentRepo
	settingsRepo   repoMongo.SettingsRepo

	tgmController controllers.TgmCtrl

	priceUseCase *priceUseCase

	metrics  map[structs.MetricConst]prometheus.Counter
	promTail promtail.Client

	logger *logrus.Logger

	now func() time.Time
}

func NewOrderUseCase(
	orderRepo postgres.OrderRepo,
	instrumentRepo postgres.InstrumentRepo,
	settingsRepo repoMongo.SettingsRepo,
	tgmController controllers.TgmCtrl,
	priceUseCase *priceUseCase,
	metrics map[structs.MetricConst]prometheus.Counter,
	promTail promtail.Client,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		orderRepo:      orderRepo,
		instrumentRepo: instrumentRepo,
		settingsRepo:   settingsRepo,
		tgmController:  tgmController,
		priceUseCase:   priceUseCase,
		metrics:        metrics,
		promTail:       promTail,
		logger:         logger,
		now:            time.Now,
	}
}

// PlaceOrder runs the order state machine: received -> [priced] ->
// {REJECTED | FILLED | NEW}. MARKET fills atomically record the correlated
// cash leg; LIMIT orders enter NEW and never move cash at placement time.
// The caller has already validated the request shape.
func (u *orderUseCase) PlaceOrder(req *structs.PlaceOrderRequest) (*models.Order, error) {
	log := u.logger.WithFields(logrus.Fields{
		"userId":       req.UserID,
		"instrumentId": req.InstrumentID,
		"side":         req.Side,
		"type":         req.Type,
	})

	instrument, err := u.instrumentRepo.GetByID(req.InstrumentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInstrumentNotFound
		}

		log.WithError(err).Error("load instrument")
		return nil, err
	}

	status := models.OrderStatusNew
	if req.Type == models.OrderTypeMarket {
		status = models.OrderStatusFilled
	}

	order := models.Order{
		SessionID:    uuid.NewString(),
		InstrumentID: req.InstrumentID,
		UserID:       req.UserID,
		Side:         req.Side,
		Type:         req.Type,
		Status:       status,
		CreatedAt:    u.now(),
	}

	// Cash instruments cannot be traded through this path: the price lookup
	// is restricted to equities and fails for everything else.
	md, err := u.priceUseCase.LatestPrice(req.InstrumentID, models.InstrumentTypeEquity)
	if err != nil {
		if errors.Is(err, ErrNoMarketData) && req.Type == models.OrderTypeMarket {
			// The attempt is still recorded, unpriced.
			placed, err := u.rejectWith(u.orderRepo, order, ReasonNoPrice, log)
			if err != nil {
				return nil, err
			}

			u.report(placed, log)
			return placed, nil
		}

		log.WithError(err).Error("resolve market price")
		return nil, err
	}

	settings, err := u.settingsRepo.Load(instrument.Ticker)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.WithError(err).Error("load ticker settings")
		return nil, err
	}
	if settings == nil {
		settings = &mongoStructs.Settings{}
	}

	if !settings.TradingEnabled() {
		placed, err := u.rejectWith(u.orderRepo, order, ReasonTradingDisabled, log)
		if err != nil {
			return nil, err
		}

		u.report(placed, log)
		return placed, nil
	}

	var placed *models.Order

	err = u.orderRepo.Serialized(req.UserID, func(store postgres.OrderStore) error {
		var err error

		switch req.Side {
		case models.SideBuy:
			placed, err = u.placeBuy(store, req, order, md.Close, settings, log)
		case models.SideSell:
			placed, err = u.placeSell(store, req, order, md.Close, settings, log)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	u.report(placed, log)

	return placed, nil
}

func (u *orderUseCase) placeBuy(
	store postgres.OrderStore,
	req *structs.PlaceOrderRequest,
	order models.Order,
	closePrice float64,
	settings *mongoStructs.Settings,
	log *logrus.Entry,
) (*models.Order, error) {
	cashFills, err := store.GetFilledCashOrders(req.UserID)
	if err != nil {
		return nil, err
	}
	cash := availableCash(cashFills)

	price, size := orderSizeAndPrice(req, closePrice)

	if cost := size * price; cost > cash {
		order.Size = size
		order.Price = &price
		return u.rejectWith(store, order, ReasonInsufficientFunds, log)
	}

	if size <= 0 {
		return u.rejectWith(store, order, ReasonCashTooLowBuy, log)
	}

	if settings.MaxOrderSize > 0 && size > settings.MaxOrderSize {
		order.Size = size
		order.Price = &price
		return u.rejectWith(store, order, ReasonMaxOrderSize, log)
	}

	order.Size = size
	order.Price = &price

	return u.commit(store, order, models.SideCashOut, log)
}

func (u *orderUseCase) placeSell(
	store postgres.OrderStore,
	req *structs.PlaceOrderRequest,
	order models.Order,
	closePrice float64,
	settings *mongoStructs.Settings,
	log *logrus.Entry,
) (*models.Order, error) {
	fills, err := store.GetFilledEquityOrders(req.UserID, &req.InstrumentID)
	if err != nil {
		return nil, err
	}

	position, ok := aggregatePositions(fills)[req.InstrumentID]
	if !ok {
		return u.rejectWith(store, order, ReasonNoPosition, log)
	}

	price, size := orderSizeAndPrice(req, closePrice)

	if size <= 0 {
		order.Size = size
		order.Price = &price
		return u.rejectWith(store, order, ReasonCashTooLowSell, log)
	}

	if position.Q < size {
		order.Size = size
		order.Price = &price
		return u.rejectWith(store, order, ReasonInsufficientPosition, log)
	}

	if settings.MaxOrderSize > 0 && size > settings.MaxOrderSize {
		order.Size = size
		order.Price = &price
		return u.rejectWith(store, order, ReasonMaxOrderSize, log)
	}

	order.Size = size
	order.Price = &price

	return u.commit(store, order, models.SideCashIn, log)
}

// commit writes the order and, for MARKET fills, its cash leg in the same
// transaction. A crash must never leave a priced fill without its cash
// movement.
func (u *orderUseCase) commit(store postgres.OrderStore, order models.Order, cashSide string, log *logrus.Entry) (*models.Order, error) {
	if order.Type != models.OrderTypeMarket {
		if err := store.Store(&order); err != nil {
			log.WithError(err).Error("store order")
			return nil, err
		}

		return &order, nil
	}

	cashLeg, err := u.cashLeg(&order, cashSide)
	if err != nil {
		log.WithError(err).Error("build cash leg")
		return nil, err
	}

	if err := store.StorePair(&order, cashLeg); err != nil {
		log.WithError(err).Error("store order pair")
		return nil, err
	}

	return &order, nil
}

func (u *orderUseCase) cashLeg(primary *models.Order, side string) (*models.Order, error) {
	cashInstrument, err := u.instrumentRepo.GetCashInstrument(models.CashTicker)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCashInstrumentNotFound
		}

		return nil, err
	}

	one := float64(1)

	return &models.Order{
		SessionID:    primary.SessionID,
		InstrumentID: cashInstrument.ID,
		UserID:       primary.UserID,
		Side:         side,
		Type:         models.OrderTypeMarket,
		Size:         primary.Size * *primary.Price,
		Price:        &one,
		Status:       models.OrderStatusFilled,
		CreatedAt:    primary.CreatedAt,
	}, nil
}

// CancelOrder transitions a NEW order to CANCELLED and re-stamps it. NEW
// orders never moved cash, so there is nothing to compensate.
func (u *orderUseCase) CancelOrder(orderID int64) (*models.Order, error) {
	order, err := u.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	if order.Status != models.OrderStatusNew {
		return nil, ErrOrderNotCancellable
	}

	at := u.now()

	if err := u.orderRepo.UpdateStatus(order.ID, models.OrderStatusCancelled, at); err != nil {
		u.logger.WithField("orderId", orderID).WithError(err).Error("cancel order")
		return nil, err
	}

	order.Status = models.OrderStatusCancelled
	order.CreatedAt = at

	u.count(structs.MetricOrderCancelled)

	return order, nil
}

func (u *orderUseCase) rejectWith(store postgres.OrderStore, order models.Order, reason string, log *logrus.Entry) (*models.Order, error) {
	order.Status = models.OrderStatusRejected
	order.Reason = &reason

	log.Error(reason)
	if u.promTail != nil {
		u.promTail.Errorf("orderUseCase: %s", reason)
	}

	if err := store.Store(&order); err != nil {
		log.WithError(err).Error("store rejected order")
		return nil, err
	}

	return &order, nil
}

// report records metrics and pushes a Telegram notification. Notification
// failures never abort the operation.
func (u *orderUseCase) report(order *models.Order, log *logrus.Entry) {
	switch order.Status {
	case models.OrderStatusFilled:
		u.count(structs.MetricOrderFilled)
	case models.OrderStatusRejected:
		u.count(structs.MetricOrderRejected)
	}

	if u.tgmController == nil {
		return
	}

	msg := fmt.Sprintf("[ Order %s ]\nuser: %d\ninstrument: %d\nside: %s\ntype: %s\nsize: %.2f",
		order.Status,
		order.UserID,
		order.InstrumentID,
		order.Side,
		order.Type,
		order.Size,
	)
	if order.Reason != nil {
		msg = fmt.Sprintf("%s\nreason: %s", msg, *order.Reason)
	}

	if err := u.tgmController.Send(msg); err != nil {
		log.WithError(err).Debug("tgm send")
	}
}

func (u *orderUseCase) count(metric structs.MetricConst) {
	if counter, ok := u.metrics[metric]; ok {
		counter.Inc()
	}
}

// orderSizeAndPrice converts the requested size or cash amount into an
// executable pair. Cash amounts floor to whole shares.
func orderSizeAndPrice(req *structs.PlaceOrderRequest, closePrice float64) (price, size float64) {
	price = closePrice
	if req.Price != nil {
		price = *req.Price
	}

	if req.Size != nil {
		size = *req.Size
		return price, size
	}

	if req.CashAmount != nil && price > 0 {
		size = math.Floor(*req.CashAmount / price)
	}

	return price, size
}
