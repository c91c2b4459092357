package lifecycle

import (
	"errors"
	"strings"

	"veryracing/internal/app/ports"
)

type FailureClass string

const (
	FailureUserRejected      FailureClass = "user_rejected"
	FailureInsufficientFunds FailureClass = "insufficient_funds"
	FailurePrecondition      FailureClass = "precondition_violated"
	FailureUnknown           FailureClass = "unknown"
)

type Outcome struct {
	Class  FailureClass
	Status Status
	Reason string
}

// 4001 is the EIP-1193 userRejectedRequest code; wallets embed it in the
// stringified RPC error.
var rejectionPhrases = []string{"User rejected", "user rejected", "4001"}

var preconditionPhrases = []string{"Already has starter vehicle", "cooldown", "staked"}

// Classify maps a Ledger failure onto the terminal taxonomy, most specific
// first: structured kinds, then the raw substrings wallets and RPC nodes
// put in opaque errors.
func Classify(err error) Outcome {
	var pre *ports.PreconditionError
	switch {
	case errors.Is(err, ports.ErrUserRejected):
		return Outcome{Class: FailureUserRejected, Status: StatusRejected}
	case errors.Is(err, ports.ErrInsufficientFunds):
		return Outcome{Class: FailureInsufficientFunds, Status: StatusError}
	case errors.As(err, &pre):
		return Outcome{Class: FailurePrecondition, Status: StatusError, Reason: pre.Reason}
	case errors.Is(err, ports.ErrPreconditionViolated):
		return Outcome{Class: FailurePrecondition, Status: StatusError}
	}

	msg := err.Error()
	for _, phrase := range rejectionPhrases {
		if strings.Contains(msg, phrase) {
			return Outcome{Class: FailureUserRejected, Status: StatusRejected}
		}
	}
	if strings.Contains(msg, "insufficient") {
		return Outcome{Class: FailureInsufficientFunds, Status: StatusError}
	}
	for _, phrase := range preconditionPhrases {
		if strings.Contains(msg, phrase) {
			return Outcome{Class: FailurePrecondition, Status: StatusError, Reason: phrase}
		}
	}
	return Outcome{Class: FailureUnknown, Status: StatusError}
}
