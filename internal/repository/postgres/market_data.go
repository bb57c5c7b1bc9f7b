package postgres

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/julimen5/cocos-challenge/models"
)

// Latest row per instrument in one round trip. When today's close and an
// older one share the latest date, today wins.
const selectLatestBatchQuery = `SELECT DISTINCT ON (m.instrument_id) m.*
	FROM marketdata m
	WHERE m.instrument_id IN (?)
	ORDER BY m.instrument_id,
	         CASE WHEN m.date::date = CURRENT_DATE THEN 0 ELSE 1 END,
	         m.date DESC`

type MarketDataRepository struct {
	conn *sqlx.DB
}

func NewMarketDataRepository(conn *sqlx.DB) MarketDataRepo {
	return &MarketDataRepository{
		conn: conn,
	}
}

func (r *MarketDataRepository) GetLatest(instrumentID int64, instrumentType string) (*models.MarketData, error) {
	var md models.MarketData

	if instrumentType != "" {
		if err := r.conn.QueryRowx(
			`SELECT m.* FROM marketdata m
			JOIN instruments i ON i.id = m.instrument_id
			WHERE m.instrument_id = $1 AND i.type = $2
			ORDER BY m.date DESC LIMIT 1`, instrumentID, instrumentType).StructScan(&md); err != nil {
			return nil, err
		}

		return &md, nil
	}

	if err := r.conn.QueryRowx(
		"SELECT * FROM marketdata WHERE instrument_id = $1 ORDER BY date DESC LIMIT 1", instrumentID).StructScan(&md); err != nil {
		return nil, err
	}

	return &md, nil
}

func (r *MarketDataRepository) GetLatestBatch(instrumentIDs []int64) ([]models.MarketData, error) {
	if len(instrumentIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(selectLatestBatchQuery, instrumentIDs)
	if err != nil {
		return nil, errors.Wrap(err, "build latest batch query")
	}

	var out []models.MarketData
	if err := r.conn.Select(&out, r.conn.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "query latest market data")
	}

	return out, nil
}
