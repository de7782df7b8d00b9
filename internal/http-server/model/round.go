package model

import (
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/session"
	"time"
)

type Round struct {
	UUID        uuid.UUID        `json:"uuid"`
	At          time.Time        `json:"at"`
	Summary     string           `json:"summary"`
	Split       int              `json:"split"`
	Lines       []SettlementLine `json:"lines"`
	TotalStake  string           `json:"total_stake"`
	TotalPayout string           `json:"total_payout"`
	Profit      string           `json:"profit"`
	Cards       []string         `json:"cards"`
}

type SettlementLine struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Stake  string `json:"stake"`
	Wins   int    `json:"wins"`
	Payout string `json:"payout"`
}

func RoundFromSession(r session.Round) Round {
	lines := make([]SettlementLine, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, SettlementLine{
			Key:    line.Key,
			Label:  line.Label,
			Stake:  converter.ConvertAmountDecimalToString(line.Stake),
			Wins:   line.Wins,
			Payout: converter.ConvertAmountDecimalToString(line.Payout),
		})
	}

	return Round{
		UUID:        r.ID,
		At:          r.At,
		Summary:     r.Summary,
		Split:       r.Split,
		Lines:       lines,
		TotalStake:  converter.ConvertAmountDecimalToString(r.TotalStake),
		TotalPayout: converter.ConvertAmountDecimalToString(r.TotalPayout),
		Profit:      converter.ConvertAmountDecimalToString(r.Profit),
		Cards:       r.Cards,
	}
}
