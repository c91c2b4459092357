package ports

import (
	"context"
	"math/big"

	"veryracing/internal/domain/garage"
)

// TxHandle is the opaque reference to a submitted write, an 0x-prefixed
// transaction hash on EVM chains.
type TxHandle string

// WriteRequest is one contract write call. Value is the exact native amount
// in wei; the core submits catalog prices unmodified.
type WriteRequest struct {
	Method string
	Args   []garage.VehicleID
	Value  *big.Int
}

// Ledger executes contract writes. Write blocks through wallet approval and
// returns once the transaction is accepted into the mempool; a pre-flight
// revert or wallet decline fails with one of the kinds in errors.go.
type Ledger interface {
	Write(ctx context.Context, req WriteRequest) (TxHandle, error)
}

type Receipt struct {
	Handle    TxHandle
	Confirmed bool
}

// ReceiptWatcher blocks until the transaction reaches a terminal receipt or
// the context ends. At most one terminal resolution per handle.
type ReceiptWatcher interface {
	Observe(ctx context.Context, handle TxHandle) (Receipt, error)
}
