package session

import (
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/shopspring/decimal"
	"sort"
	"time"
)

// BoardCell is one occupied betting cell in a snapshot.
type BoardCell struct {
	Key        string          `json:"key"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Stake      decimal.Decimal `json:"stake"`
}

// State is a consistent point-in-time copy of a session. It shares no
// mutable data with the session it was taken from.
type State struct {
	ID              uuid.UUID       `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	Balance         decimal.Decimal `json:"balance"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	SessionProfit   decimal.Decimal `json:"session_profit"`
	TotalStaked     decimal.Decimal `json:"total_staked"`
	TotalPaidOut    decimal.Decimal `json:"total_paid_out"`
	Board           []BoardCell     `json:"board"`
	BoardTotal      decimal.Decimal `json:"board_total"`
	Dealing         bool            `json:"dealing"`
	Drawn           []domain.Card   `json:"drawn"`
	Revealed        int             `json:"revealed"`
	LastRound       *Round          `json:"last_round,omitempty"`
	History         []Round         `json:"history"`
	RoundsPlayed    int             `json:"rounds_played"`
}

// Snapshot copies the current session state under the lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		keys  = make([]string, 0, len(s.board))
		board = make([]BoardCell, 0, len(s.board))
	)

	for k := range s.board {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		// Keys on the board were validated by PlaceChip.
		w, _ := domain.ParseKey(k)
		board = append(board, BoardCell{
			Key:        k,
			Label:      w.Label(),
			Multiplier: w.Multiplier(),
			Stake:      s.board[k],
		})
	}

	drawn := make([]domain.Card, len(s.drawn))
	copy(drawn, s.drawn)

	history := make([]Round, len(s.history))
	copy(history, s.history)

	var lastRound *Round
	if len(history) > 0 {
		lastRound = &history[0]
	}

	return State{
		ID:              s.id,
		CreatedAt:       s.createdAt,
		Balance:         s.balance,
		StartingBalance: s.startingBalance,
		SessionProfit:   s.balance.Sub(s.startingBalance).Round(2),
		TotalStaked:     s.totalStaked,
		TotalPaidOut:    s.totalPaidOut,
		Board:           board,
		BoardTotal:      s.boardTotalLocked(),
		Dealing:         s.dealing,
		Drawn:           drawn,
		Revealed:        s.revealed,
		LastRound:       lastRound,
		History:         history,
		RoundsPlayed:    s.roundsPlayed,
	}
}
