package model

import (
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/session"
	"time"
)

type Session struct {
	UUID            uuid.UUID   `json:"uuid"`
	CreatedAt       time.Time   `json:"created_at"`
	Balance         string      `json:"balance"`
	StartingBalance string      `json:"starting_balance"`
	SessionProfit   string      `json:"session_profit"`
	TotalStaked     string      `json:"total_staked"`
	TotalPaidOut    string      `json:"total_paid_out"`
	Board           []BoardCell `json:"board"`
	BoardTotal      string      `json:"board_total"`
	Dealing         bool        `json:"dealing"`
	Table           []TableCard `json:"table"`
	LastRound       *Round      `json:"last_round,omitempty"`
	History         []Round     `json:"history"`
	RoundsPlayed    int         `json:"rounds_played"`
}

type BoardCell struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Multiplier string `json:"multiplier"`
	Stake      string `json:"stake"`
}

// ChipsFromDenominations renders the configured chip tray for the wire.
func ChipsFromDenominations(denominations []float64) []string {
	chips := make([]string, 0, len(denominations))
	for _, d := range denominations {
		chips = append(chips, converter.ConvertAmountDecimalToString(converter.ConvertAmountFloatToDecimal(d)))
	}

	return chips
}

// MultiplierTable renders the payout factor per wager kind for the wire.
func MultiplierTable() map[string]string {
	table := make(map[string]string)
	for kind, m := range domain.Multipliers() {
		table[string(kind)] = m.String()
	}

	return table
}

// SessionFromState maps a session snapshot onto the wire shape. Money fields
// become fixed-point strings and unrevealed table cards lose their identity.
func SessionFromState(st session.State) Session {
	board := make([]BoardCell, 0, len(st.Board))
	for _, cell := range st.Board {
		board = append(board, BoardCell{
			Key:        cell.Key,
			Label:      cell.Label,
			Multiplier: cell.Multiplier.String(),
			Stake:      converter.ConvertAmountDecimalToString(cell.Stake),
		})
	}

	table := make([]TableCard, 0, len(st.Drawn))
	for i, c := range st.Drawn {
		if i < st.Revealed {
			card := CardFromDomain(c)
			table = append(table, TableCard{Revealed: true, Card: &card})
		} else {
			table = append(table, TableCard{Revealed: false})
		}
	}

	history := make([]Round, 0, len(st.History))
	for _, r := range st.History {
		history = append(history, RoundFromSession(r))
	}

	// The newest round is the one being revealed. Until the reveal finishes
	// its cards and per-line outcomes stay off the wire.
	if st.Dealing && len(history) > 0 {
		history[0].Cards = nil
		history[0].Lines = nil
	}

	var lastRound *Round
	if len(history) > 0 {
		lastRound = &history[0]
	}

	return Session{
		UUID:            st.ID,
		CreatedAt:       st.CreatedAt,
		Balance:         converter.ConvertAmountDecimalToString(st.Balance),
		StartingBalance: converter.ConvertAmountDecimalToString(st.StartingBalance),
		SessionProfit:   converter.ConvertAmountDecimalToString(st.SessionProfit),
		TotalStaked:     converter.ConvertAmountDecimalToString(st.TotalStaked),
		TotalPaidOut:    converter.ConvertAmountDecimalToString(st.TotalPaidOut),
		Board:           board,
		BoardTotal:      converter.ConvertAmountDecimalToString(st.BoardTotal),
		Dealing:         st.Dealing,
		Table:           table,
		LastRound:       lastRound,
		History:         history,
		RoundsPlayed:    st.RoundsPlayed,
	}
}
