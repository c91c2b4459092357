package lifecycle

import (
	"time"

	"veryracing/internal/app/ports"
	"veryracing/internal/domain/garage"
)

type Status string

const (
	StatusIdle          Status = "idle"
	StatusWalletConfirm Status = "wallet_confirm"
	StatusConfirming    Status = "confirming"
	StatusSuccess       Status = "success"
	StatusError         Status = "error"
	StatusRejected      Status = "rejected"
)

// Terminal states auto-decay to idle after a fixed delay.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError || s == StatusRejected
}

type ActionKind string

const (
	ActionMint  ActionKind = "mint"
	ActionBreed ActionKind = "breed"
)

// Subject identifies what an action concerns: a mint category, or a
// breeding pair.
type Subject struct {
	Category garage.Category  `json:"category,omitempty"`
	Parent1  garage.VehicleID `json:"parent1,omitempty"`
	Parent2  garage.VehicleID `json:"parent2,omitempty"`
}

// Record is the externally observable state of one action kind. TxHandle is
// set only once the write is in the mempool.
type Record struct {
	Kind     ActionKind     `json:"kind"`
	Status   Status         `json:"status"`
	Message  string         `json:"message,omitempty"`
	TxHandle ports.TxHandle `json:"tx_handle,omitempty"`
	Subject  Subject        `json:"subject"`
}

// Delays are the fixed decay timings. The values mirror the production web
// client: a second refetch 2s after success to absorb indexing lag, reset
// 3.5s after success, reset 2s after any failure.
type Delays struct {
	IndexLag     time.Duration
	SuccessReset time.Duration
	FailureReset time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		IndexLag:     2 * time.Second,
		SuccessReset: 3500 * time.Millisecond,
		FailureReset: 2 * time.Second,
	}
}
