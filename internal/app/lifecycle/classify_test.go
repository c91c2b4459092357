package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"veryracing/internal/app/ports"
)

func TestClassify_StructuredKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Outcome
	}{
		{"user rejected", ports.ErrUserRejected, Outcome{Class: FailureUserRejected, Status: StatusRejected}},
		{"wrapped user rejected", fmt.Errorf("write: %w", ports.ErrUserRejected), Outcome{Class: FailureUserRejected, Status: StatusRejected}},
		{"insufficient funds", ports.ErrInsufficientFunds, Outcome{Class: FailureInsufficientFunds, Status: StatusError}},
		{"precondition with reason", &ports.PreconditionError{Reason: "Already has starter vehicle"}, Outcome{Class: FailurePrecondition, Status: StatusError, Reason: "Already has starter vehicle"}},
		{"bare precondition", ports.ErrPreconditionViolated, Outcome{Class: FailurePrecondition, Status: StatusError}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify=%+v want %+v", got, tc.want)
			}
		})
	}
}

func TestClassify_SubstringFallback(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Outcome
	}{
		{"wallet phrase upper", errors.New("MetaMask Tx Signature: User rejected the request"), Outcome{Class: FailureUserRejected, Status: StatusRejected}},
		{"wallet phrase lower", errors.New("user rejected transaction"), Outcome{Class: FailureUserRejected, Status: StatusRejected}},
		{"eip-1193 code", errors.New(`{"code": 4001, "message": "denied"}`), Outcome{Class: FailureUserRejected, Status: StatusRejected}},
		{"funds", errors.New("err: insufficient funds for gas * price + value"), Outcome{Class: FailureInsufficientFunds, Status: StatusError}},
		{"starter revert", errors.New("execution reverted: Already has starter vehicle"), Outcome{Class: FailurePrecondition, Status: StatusError, Reason: "Already has starter vehicle"}},
		{"cooldown revert", errors.New("execution reverted: breeding cooldown active"), Outcome{Class: FailurePrecondition, Status: StatusError, Reason: "cooldown"}},
		{"staked revert", errors.New("execution reverted: vehicle is staked"), Outcome{Class: FailurePrecondition, Status: StatusError, Reason: "staked"}},
		{"unknown", errors.New("nonce too low"), Outcome{Class: FailureUnknown, Status: StatusError}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify=%+v want %+v", got, tc.want)
			}
		})
	}
}

func TestClassify_RejectionBeatsFundsSubstring(t *testing.T) {
	// Most specific first: a message carrying both a rejection phrase and
	// "insufficient" classifies as a rejection.
	got := Classify(errors.New("user rejected: insufficient confirmation"))
	if got.Class != FailureUserRejected || got.Status != StatusRejected {
		t.Fatalf("expected rejection to win, got %+v", got)
	}
}
