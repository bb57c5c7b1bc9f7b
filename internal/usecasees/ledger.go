package usecasees

import (
	"sort"

	"github.com/julimen5/cocos-challenge/models"
)

// availableCash replays FILLED cash-instrument orders. For those rows Size is
// a currency amount, so the balance is a plain signed sum.
func availableCash(fills []models.Order) float64 {
	var cash float64

	for _, o := range fills {
		switch o.Side {
		case models.SideCashIn:
			cash += o.Size
		case models.SideCashOut:
			cash -= o.Size
		}
	}

	return cash
}

// aggregatePositions folds equity fills into per-instrument raw positions.
// A SELL only reduces Q: QTotal and SumTotal track buys alone, so the average
// cost of the remaining shares never changes on a sale. The fold is
// order-independent.
func aggregatePositions(fills []models.Order) map[int64]models.RawPosition {
	out := make(map[int64]models.RawPosition, len(fills))

	for _, o := range fills {
		var price float64
		if o.Price != nil {
			price = *o.Price
		}

		pos := out[o.InstrumentID]

		switch o.Side {
		case models.SideBuy:
			pos.Q += o.Size
			pos.QTotal += o.Size
			pos.SumTotal += o.Size * price
		case models.SideSell:
			pos.Q -= o.Size
		}

		out[o.InstrumentID] = pos
	}

	return out
}

// valuePositions enriches raw positions with the latest close. Instruments
// with no net position are filtered out; instruments missing market data are
// dropped rather than failing the whole valuation. Output is sorted by
// instrument id so repeated reads are identical.
func valuePositions(raw map[int64]models.RawPosition, prices map[int64]models.MarketData) []models.Position {
	positions := make([]models.Position, 0, len(raw))

	for instrumentID, pos := range raw {
		if pos.Q == 0 || pos.QTotal <= 0 {
			continue
		}

		md, ok := prices[instrumentID]
		if !ok {
			continue
		}

		avgPrice := pos.SumTotal / pos.QTotal
		currentPrice := md.Close

		side := models.PositionSideLong
		if pos.Q < 0 {
			side = models.PositionSideShort
		}

		var performance, realPerformance float64
		if avgPrice != 0 {
			performance = (currentPrice - avgPrice) / avgPrice * 100
			realPerformance = performance
			if side == models.PositionSideShort {
				realPerformance = (avgPrice - currentPrice) / avgPrice * 100
			}
		}

		positions = append(positions, models.Position{
			InstrumentID:    instrumentID,
			Quantity:        pos.Q,
			AvgPrice:        avgPrice,
			CurrentPrice:    currentPrice,
			Value:           pos.Q * currentPrice,
			Side:            side,
			Performance:     performance,
			RealPerformance: realPerformance,
		})
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].InstrumentID < positions[j].InstrumentID
	})

	return positions
}
