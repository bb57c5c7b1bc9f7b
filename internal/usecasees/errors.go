package usecasees

import "errors"

var (
	// ErrNoMarketData is a hard stop outside the place-order path: pricing an
	// order at 0 would corrupt the ledger.
	ErrNoMarketData = errors.New("no market data found for instrument")

	ErrOrderNotFound          = errors.New("order not found")
	ErrInstrumentNotFound     = errors.New("instrument not found")
	ErrOrderNotCancellable    = errors.New("only NEW orders can be cancelled")
	ErrCashInstrumentNotFound = errors.New("cash instrument not found")
)
