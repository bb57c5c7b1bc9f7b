package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	mongoStructs "github.com/julimen5/cocos-challenge/internal/repository/mongo/structs"
	"github.com/julimen5/cocos-challenge/internal/usecasees"
	"github.com/julimen5/cocos-challenge/internal/usecasees/structs"
	"github.com/julimen5/cocos-challenge/models"
)

type orderUseCaseStub struct {
	placeOrder  func(req *structs.PlaceOrderRequest) (*models.Order, error)
	cancelOrder func(orderID int64) (*models.Order, error)
}

func (s *orderUseCaseStub) PlaceOrder(req *structs.PlaceOrderRequest) (*models.Order, error) {
	return s.placeOrder(req)
}

func (s *orderUseCaseStub) CancelOrder(orderID int64) (*models.Order, error) {
	return s.cancelOrder(orderID)
}

type portfolioUseCaseStub struct {
	getPortfolio func(userID int64) (*models.PortfolioSummary, error)
}

func (s *portfolioUseCaseStub) GetPortfolio(userID int64) (*models.PortfolioSummary, error) {
	return s.getPortfolio(userID)
}

type instrumentUseCaseStub struct {
	search func(query string, page, pageSize int) ([]models.Instrument, int64, error)
}

func (s *instrumentUseCaseStub) Search(query string, page, pageSize int) ([]models.Instrument, int64, error) {
	return s.search(query, page, pageSize)
}

type settingsUseCaseStub struct {
	getTickerSettings func(ticker string) (*mongoStructs.Settings, error)
	setTickerStatus   func(ticker string, status mongoStructs.TickerStatus) error
	setMaxOrderSize   func(ticker string, maxOrderSize float64) error
}

func (s *settingsUseCaseStub) GetTickerSettings(ticker string) (*mongoStructs.Settings, error) {
	return s.getTickerSettings(ticker)
}

func (s *settingsUseCaseStub) SetTickerStatus(ticker string, status mongoStructs.TickerStatus) error {
	return s.setTickerStatus(ticker, status)
}

func (s *settingsUseCaseStub) SetMaxOrderSize(ticker string, maxOrderSize float64) error {
	return s.setMaxOrderSize(ticker, maxOrderSize)
}

func newTestApp(o OrderUseCase, p PortfolioUseCase, i InstrumentUseCase, s SettingsUseCase) *fiber.App {
	app := fiber.New()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	RegisterHTTPEndpoints(app, o, p, i, s, logger)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &parsed))

	return resp.StatusCode, parsed
}

func errorMessage(body map[string]interface{}) string {
	result, _ := body["result"].(map[string]interface{})
	msg, _ := result["message"].(string)

	return msg
}

func Test_PlaceOrder_Validation(t *testing.T) {
	app := newTestApp(&orderUseCaseStub{
		placeOrder: func(req *structs.PlaceOrderRequest) (*models.Order, error) {
			t.Error("use case must not be reached on invalid input")
			return nil, nil
		},
	}, nil, nil, nil)

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{
			name: "limit without price",
			body: `{"instrumentId":1,"userId":1,"side":"BUY","type":"LIMIT","size":10}`,
			msg:  structs.ErrLimitRequiresPrice.Error(),
		},
		{
			name: "market with price",
			body: `{"instrumentId":1,"userId":1,"side":"BUY","type":"MARKET","size":10,"price":148}`,
			msg:  structs.ErrMarketForbidsPrice.Error(),
		},
		{
			name: "size and cashAmount together",
			body: `{"instrumentId":1,"userId":1,"side":"BUY","type":"MARKET","size":10,"cashAmount":1500}`,
			msg:  structs.ErrSizeOrCashAmount.Error(),
		},
		{
			name: "neither size nor cashAmount",
			body: `{"instrumentId":1,"userId":1,"side":"SELL","type":"MARKET"}`,
			msg:  structs.ErrSizeOrCashAmount.Error(),
		},
		{
			name: "unknown side",
			body: `{"instrumentId":1,"userId":1,"side":"HOLD","type":"MARKET","size":10}`,
			msg:  structs.ErrInvalidSide.Error(),
		},
		{
			name: "missing instrument",
			body: `{"userId":1,"side":"BUY","type":"MARKET","size":10}`,
			msg:  structs.ErrMissingInstrumentID.Error(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doJSON(t, app, nethttp.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.msg, errorMessage(body))
		})
	}
}

func Test_PlaceOrder_RejectedIsCreated(t *testing.T) {
	reason := "Insufficient funds"

	app := newTestApp(&orderUseCaseStub{
		placeOrder: func(req *structs.PlaceOrderRequest) (*models.Order, error) {
			return &models.Order{
				ID:           42,
				InstrumentID: req.InstrumentID,
				UserID:       req.UserID,
				Side:         req.Side,
				Type:         req.Type,
				Status:       models.OrderStatusRejected,
				Reason:       &reason,
			}, nil
		},
	}, nil, nil, nil)

	status, body := doJSON(t, app, nethttp.MethodPost, "/api/orders",
		`{"instrumentId":1,"userId":2,"side":"BUY","type":"MARKET","size":10}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	result, _ := body["result"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusRejected, result["status"])
	assert.Equal(t, reason, result["reason"])
}

func Test_CancelOrder(t *testing.T) {
	t.Run("unknown order is 404", func(t *testing.T) {
		app := newTestApp(&orderUseCaseStub{
			cancelOrder: func(orderID int64) (*models.Order, error) {
				return nil, usecasees.ErrOrderNotFound
			},
		}, nil, nil, nil)

		status, body := doJSON(t, app, nethttp.MethodPatch, "/api/orders/99/cancel", "")

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, usecasees.ErrOrderNotFound.Error(), errorMessage(body))
	})

	t.Run("filled order is 409", func(t *testing.T) {
		app := newTestApp(&orderUseCaseStub{
			cancelOrder: func(orderID int64) (*models.Order, error) {
				return nil, usecasees.ErrOrderNotCancellable
			},
		}, nil, nil, nil)

		status, _ := doJSON(t, app, nethttp.MethodPatch, "/api/orders/7/cancel", "")

		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("cancelled order comes back in the envelope", func(t *testing.T) {
		app := newTestApp(&orderUseCaseStub{
			cancelOrder: func(orderID int64) (*models.Order, error) {
				return &models.Order{ID: orderID, Status: models.OrderStatusCancelled}, nil
			},
		}, nil, nil, nil)

		status, body := doJSON(t, app, nethttp.MethodPatch, "/api/orders/7/cancel", "")

		assert.Equal(t, fiber.StatusOK, status)

		result, _ := body["result"].(map[string]interface{})
		assert.Equal(t, models.OrderStatusCancelled, result["status"])
	})
}

func Test_GetPortfolio(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		app := newTestApp(nil, &portfolioUseCaseStub{
			getPortfolio: func(userID int64) (*models.PortfolioSummary, error) {
				return &models.PortfolioSummary{TotalValue: 2900, AvailableCash: 500}, nil
			},
		}, nil, nil)

		status, body := doJSON(t, app, nethttp.MethodGet, "/api/portfolio/1", "")

		assert.Equal(t, fiber.StatusOK, status)

		result, _ := body["result"].(map[string]interface{})
		assert.Equal(t, float64(2900), result["totalValue"])
	})

	t.Run("internal errors never leak", func(t *testing.T) {
		app := newTestApp(nil, &portfolioUseCaseStub{
			getPortfolio: func(userID int64) (*models.PortfolioSummary, error) {
				return nil, errors.New("pq: relation orders does not exist")
			},
		}, nil, nil)

		status, body := doJSON(t, app, nethttp.MethodGet, "/api/portfolio/1", "")

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "internal server error", errorMessage(body))
	})
}

func Test_SearchInstruments(t *testing.T) {
	app := newTestApp(nil, nil, &instrumentUseCaseStub{
		search: func(query string, page, pageSize int) ([]models.Instrument, int64, error) {
			assert.Equal(t, "DYCA", query)
			assert.Equal(t, 1, page)

			return []models.Instrument{
				{ID: 1, Ticker: "DYCA", Name: "Dycasa S.A.", Type: models.InstrumentTypeEquity},
			}, 25, nil
		},
	}, nil)

	status, body := doJSON(t, app, nethttp.MethodGet, "/api/instruments?query=DYCA", "")

	assert.Equal(t, fiber.StatusOK, status)

	metadata, _ := body["metadata"].(map[string]interface{})
	assert.Equal(t, float64(25), metadata["totalCount"])
	assert.Equal(t, float64(3), metadata["numberOfPages"])
	assert.Equal(t, float64(2), metadata["nextPage"])
}

func Test_SearchInstruments_PagingClamped(t *testing.T) {
	cases := []struct {
		name   string
		target string

		wantPage     float64
		wantPageSize float64
	}{
		{name: "zero page size", target: "/api/instruments?pageSize=0", wantPage: 1, wantPageSize: 10},
		{name: "oversized page size", target: "/api/instruments?pageSize=500", wantPage: 1, wantPageSize: 100},
		{name: "negative page", target: "/api/instruments?page=-3&pageSize=20", wantPage: 1, wantPageSize: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(nil, nil, &instrumentUseCaseStub{
				search: func(query string, page, pageSize int) ([]models.Instrument, int64, error) {
					assert.Equal(t, int(tc.wantPage), page)
					assert.Equal(t, int(tc.wantPageSize), pageSize)

					return []models.Instrument{}, 0, nil
				},
			}, nil)

			status, body := doJSON(t, app, nethttp.MethodGet, tc.target, "")

			assert.Equal(t, fiber.StatusOK, status)

			metadata, _ := body["metadata"].(map[string]interface{})
			assert.Equal(t, tc.wantPage, metadata["currentPage"])
			assert.Equal(t, tc.wantPageSize, metadata["pageSize"])
		})
	}
}

func Test_UpdateInstrumentSettings(t *testing.T) {
	t.Run("invalid status is 400", func(t *testing.T) {
		app := newTestApp(nil, nil, nil, &settingsUseCaseStub{
			setTickerStatus: func(ticker string, status mongoStructs.TickerStatus) error {
				t.Error("use case must not be reached on invalid input")
				return nil
			},
		})

		status, body := doJSON(t, app, nethttp.MethodPut, "/api/instruments/DYCA/settings",
			`{"status":"PAUSED"}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, structs.ErrInvalidTickerStatus.Error(), errorMessage(body))
	})

	t.Run("empty update is 400", func(t *testing.T) {
		app := newTestApp(nil, nil, nil, &settingsUseCaseStub{})

		status, body := doJSON(t, app, nethttp.MethodPut, "/api/instruments/DYCA/settings", `{}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, structs.ErrEmptySettingsUpdate.Error(), errorMessage(body))
	})

	t.Run("applies both fields and returns the document", func(t *testing.T) {
		var gotStatus mongoStructs.TickerStatus
		var gotMax float64

		app := newTestApp(nil, nil, nil, &settingsUseCaseStub{
			setTickerStatus: func(ticker string, status mongoStructs.TickerStatus) error {
				assert.Equal(t, "DYCA", ticker)
				gotStatus = status
				return nil
			},
			setMaxOrderSize: func(ticker string, maxOrderSize float64) error {
				gotMax = maxOrderSize
				return nil
			},
			getTickerSettings: func(ticker string) (*mongoStructs.Settings, error) {
				return &mongoStructs.Settings{
					Ticker:       ticker,
					Status:       mongoStructs.Disabled.ToString(),
					MaxOrderSize: 50,
				}, nil
			},
		})

		status, body := doJSON(t, app, nethttp.MethodPut, "/api/instruments/DYCA/settings",
			`{"status":"DISABLED","maxOrderSize":50}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, mongoStructs.Disabled, gotStatus)
		assert.Equal(t, float64(50), gotMax)

		result, _ := body["result"].(map[string]interface{})
		assert.Equal(t, "DISABLED", result["status"])
		assert.Equal(t, float64(50), result["maxOrderSize"])
	})
}
