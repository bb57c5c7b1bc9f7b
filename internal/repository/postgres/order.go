package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/julimen5/cocos-challenge/models"
)

const insertOrderQuery = `INSERT INTO orders (session_id,instrument_id,user_id,side,type,size,price,status,reason,created_at)
	VALUES (:session_id,:instrument_id,:user_id,:side,:type,:size,:price,:status,:reason,:created_at) RETURNING id`

const selectEquityFillsQuery = `SELECT o.* FROM orders o
	JOIN instruments i ON i.id = o.instrument_id
	WHERE o.user_id = $1 AND o.status = 'FILLED' AND o.side IN ('BUY','SELL') AND i.type = 'EQUITY'`

const selectCashFillsQuery = `SELECT o.* FROM orders o
	JOIN instruments i ON i.id = o.instrument_id
	WHERE o.user_id = $1 AND o.status = 'FILLED' AND o.side IN ('CASH_IN','CASH_OUT') AND i.type = 'CASH'
	ORDER BY o.created_at`

type OrderRepository struct {
	conn *sqlx.DB
	orderStore
}

func NewOrderRepository(conn *sqlx.DB) OrderRepo {
	return &OrderRepository{
		conn:       conn,
		orderStore: orderStore{ext: conn},
	}
}

// Serialized runs fn inside a transaction holding an advisory lock keyed by
// the user id. Concurrent placements for the same user wait on the lock, so
// the balance/position check and the order insert see a stable ledger.
func (r *OrderRepository) Serialized(userID int64, fn func(OrderStore) error) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin order tx")
	}

	if _, err := tx.Exec("SELECT pg_advisory_xact_lock($1)", userID); err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "lock user ledger")
	}

	if err := fn(&orderStore{ext: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	return errors.Wrap(tx.Commit(), "commit order tx")
}

func (r *OrderRepository) GetByID(id int64) (*models.Order, error) {
	var order models.Order

	if err := r.conn.QueryRowx("SELECT * FROM orders WHERE id = $1 LIMIT 1", id).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) UpdateStatus(id int64, status string, at time.Time) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1, created_at = $2 WHERE id = $3;", status, at, id); err != nil {
		return errors.Wrap(err, "update order status")
	}

	return nil
}

// orderStore runs against either *sqlx.DB or *sqlx.Tx.
type orderStore struct {
	ext sqlx.Ext
}

func (s *orderStore) Store(m *models.Order) error {
	rows, err := sqlx.NamedQuery(s.ext, insertOrderQuery, m)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&m.ID); err != nil {
			return errors.Wrap(err, "scan order id")
		}
	}

	return errors.Wrap(rows.Err(), "insert order")
}

// StorePair is only atomic when running against the transaction handed out by
// Serialized; the order use case always places fills through it.
func (s *orderStore) StorePair(primary, cashLeg *models.Order) error {
	if err := s.Store(primary); err != nil {
		return err
	}

	return s.Store(cashLeg)
}

func (s *orderStore) GetFilledEquityOrders(userID int64, instrumentID *int64) ([]models.Order, error) {
	var orders []models.Order

	if instrumentID != nil {
		if err := sqlx.Select(s.ext, &orders, selectEquityFillsQuery+" AND o.instrument_id = $2 ORDER BY o.created_at", userID, *instrumentID); err != nil {
			return nil, errors.Wrap(err, "query equity fills")
		}

		return orders, nil
	}

	if err := sqlx.Select(s.ext, &orders, selectEquityFillsQuery+" ORDER BY o.created_at", userID); err != nil {
		return nil, errors.Wrap(err, "query equity fills")
	}

	return orders, nil
}

func (s *orderStore) GetFilledCashOrders(userID int64) ([]models.Order, error) {
	var orders []models.Order

	if err := sqlx.Select(s.ext, &orders, selectCashFillsQuery, userID); err != nil {
		return nil, errors.Wrap(err, "query cash fills")
	}

	return orders, nil
}
