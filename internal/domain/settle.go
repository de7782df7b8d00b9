package domain

import (
	"github.com/shopspring/decimal"
)

const (
	// MinSplit and MaxSplit bound the number of cards drawn per round.
	MinSplit = 1
	MaxSplit = DeckSize
)

// ClampSplit normalizes a requested split count: truncated to an integer,
// defaulted to MinSplit when non-positive, capped at MaxSplit.
func ClampSplit(split float64) int {
	n := int(split)
	if n < MinSplit {
		return MinSplit
	}
	if n > MaxSplit {
		return MaxSplit
	}
	return n
}

// PlacedWager pairs a wager with its accumulated stake for settlement.
type PlacedWager struct {
	Wager Wager
	Stake decimal.Decimal
}

// SettlementLine is the per-wager outcome of a round.
type SettlementLine struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Stake  decimal.Decimal `json:"stake"`
	Wins   int             `json:"wins"`
	Payout decimal.Decimal `json:"payout"`
}

// Settlement is the financial outcome of one round: every line's payout is
// stake x multiplier x wins/split, rounded to 2 decimal places, and the totals
// are rounded the same way after summation.
type Settlement struct {
	Cards       []Card           `json:"cards"`
	Split       int              `json:"split"`
	Lines       []SettlementLine `json:"lines"`
	TotalStake  decimal.Decimal  `json:"total_stake"`
	TotalPayout decimal.Decimal  `json:"total_payout"`
	Profit      decimal.Decimal  `json:"profit"`
}

// Settle evaluates every placed wager against the drawn cards and computes
// the proportional payouts. Pure: no balance or board mutation happens here.
// The drawn slice must be the round's full draw; its length is the split.
func Settle(drawn []Card, wagers []PlacedWager) Settlement {
	split := len(drawn)
	out := Settlement{
		Cards:       drawn,
		Split:       split,
		Lines:       make([]SettlementLine, 0, len(wagers)),
		TotalStake:  decimal.Zero,
		TotalPayout: decimal.Zero,
	}

	divisor := decimal.NewFromInt(int64(split))
	for _, pw := range wagers {
		wins := 0
		for _, c := range drawn {
			if pw.Wager.Matches(c) {
				wins++
			}
		}

		payout := decimal.Zero
		if wins > 0 {
			payout = pw.Stake.
				Mul(pw.Wager.Multiplier()).
				Mul(decimal.NewFromInt(int64(wins))).
				Div(divisor).
				Round(2)
		}

		out.Lines = append(out.Lines, SettlementLine{
			Key:    pw.Wager.Key(),
			Label:  pw.Wager.Label(),
			Stake:  pw.Stake,
			Wins:   wins,
			Payout: payout,
		})
		out.TotalStake = out.TotalStake.Add(pw.Stake)
		out.TotalPayout = out.TotalPayout.Add(payout)
	}

	out.TotalStake = out.TotalStake.Round(2)
	out.TotalPayout = out.TotalPayout.Round(2)
	out.Profit = out.TotalPayout.Sub(out.TotalStake).Round(2)
	return out
}
