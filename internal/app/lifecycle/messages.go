package lifecycle

import (
	"fmt"
	"strings"

	"veryracing/internal/domain/garage"
)

const (
	msgWalletConfirm   = "Please confirm the transaction in your wallet..."
	msgBreedingStarted = "Breeding in progress..."
	msgConfirming      = "Waiting for blockchain confirmation..."
	msgChainFailure    = "Transaction failed on blockchain. Please try again."
	msgRejected        = "Transaction rejected by user. Please try again when ready."
	msgStarterOwned    = "You already have a starter vehicle. Refresh your garage."
	msgBreedCooldown   = "One of the parent vehicles is still in breeding cooldown."
	msgBreedStaked     = "Cannot breed staked vehicles. Unstake them first."
	msgMintFailed      = "Minting failed. Please check your wallet and try again."
	msgBreedFailed     = "An unexpected error occurred during breeding."
	msgBreedSuccess    = "Breeding successful! Your new Gen-X Hybrid is on the way. Check your garage!"
	msgStarterSuccess  = "Congratulations! You have successfully purchased your first NFT bike!"
	msgMintSuccess     = "Mint confirmed! Your new vehicle is waiting in the garage."
	msgNotBreedable    = "These vehicles cannot be bred together."
	msgSelectStaked    = "Cannot select staked vehicles for breeding."
	msgSelectNotOwned  = "That vehicle is not in your garage."
)

func (c *Controller) failureMessage(kind ActionKind, sub Subject, o Outcome) string {
	switch o.Class {
	case FailureUserRejected:
		return msgRejected
	case FailureInsufficientFunds:
		if kind == ActionBreed {
			return fmt.Sprintf("Insufficient funds for breeding (%s VERY required).", c.Catalog.Breeding.Price)
		}
		if listing, ok := c.Catalog.Listing(sub.Category); ok {
			return fmt.Sprintf("Insufficient funds. You need at least %s VERY to mint a %s.", listing.Price, listing.Name)
		}
		return "Insufficient funds. Top up your wallet and try again."
	case FailurePrecondition:
		switch {
		case strings.Contains(o.Reason, "starter"):
			return msgStarterOwned
		case strings.Contains(o.Reason, "cooldown"):
			return msgBreedCooldown
		case strings.Contains(o.Reason, "staked"):
			return msgBreedStaked
		}
	}
	if kind == ActionBreed {
		return msgBreedFailed
	}
	return msgMintFailed
}

func successMessage(kind ActionKind, sub Subject) string {
	if kind == ActionBreed {
		return msgBreedSuccess
	}
	if sub.Category == garage.CategoryBike {
		return msgStarterSuccess
	}
	return msgMintSuccess
}
