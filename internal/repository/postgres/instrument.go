package postgres

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/julimen5/cocos-challenge/models"
)

type InstrumentRepository struct {
	conn *sqlx.DB
}

func NewInstrumentRepository(conn *sqlx.DB) InstrumentRepo {
	return &InstrumentRepository{
		conn: conn,
	}
}

func (r *InstrumentRepository) GetByID(id int64) (*models.Instrument, error) {
	var instrument models.Instrument

	if err := r.conn.QueryRowx("SELECT * FROM instruments WHERE id = $1 LIMIT 1", id).StructScan(&instrument); err != nil {
		return nil, err
	}

	return &instrument, nil
}

func (r *InstrumentRepository) GetCashInstrument(ticker string) (*models.Instrument, error) {
	var instrument models.Instrument

	if err := r.conn.QueryRowx("SELECT * FROM instruments WHERE type = 'CASH' AND ticker = $1 LIMIT 1", ticker).StructScan(&instrument); err != nil {
		return nil, err
	}

	return &instrument, nil
}

func (r *InstrumentRepository) Search(query string, limit, offset int) ([]models.Instrument, int64, error) {
	var instruments []models.Instrument
	var count int64

	if query == "" {
		if err := r.conn.QueryRowx("SELECT count(*) FROM instruments").Scan(&count); err != nil {
			return nil, 0, errors.Wrap(err, "count instruments")
		}

		if err := r.conn.Select(&instruments, "SELECT * FROM instruments ORDER BY id LIMIT $1 OFFSET $2", limit, offset); err != nil {
			return nil, 0, errors.Wrap(err, "query instruments")
		}

		return instruments, count, nil
	}

	pattern := "%" + query + "%"

	if err := r.conn.QueryRowx("SELECT count(*) FROM instruments WHERE ticker ILIKE $1 OR name ILIKE $1", pattern).Scan(&count); err != nil {
		return nil, 0, errors.Wrap(err, "count instruments")
	}

	if err := r.conn.Select(&instruments, "SELECT * FROM instruments WHERE ticker ILIKE $1 OR name ILIKE $1 ORDER BY id LIMIT $2 OFFSET $3", pattern, limit, offset); err != nil {
		return nil, 0, errors.Wrap(err, "query instruments")
	}

	return instruments, count, nil
}
