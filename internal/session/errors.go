package session

import "errors"

// Rejection conditions for player actions. None of them leave partial state:
// an action either applies fully or not at all.
var (
	// ErrRoundInProgress guards every board and deal action while cards from
	// the previous deal are still being revealed.
	ErrRoundInProgress = errors.New("round in progress")

	// ErrInsufficientBalance rejects chip placements larger than the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrEmptyBoard rejects a deal when no wager is active.
	ErrEmptyBoard = errors.New("no active bets on the board")

	// ErrInvalidAmount rejects non-positive chip amounts.
	ErrInvalidAmount = errors.New("invalid chip amount")
)
