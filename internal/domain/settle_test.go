package domain

import (
	"github.com/shopspring/decimal"
	"testing"
)

func TestClampSplit(t *testing.T) {
	cases := []struct {
		name  string
		split float64
		want  int
	}{
		{
			name:  "Zero",
			split: 0,
			want:  1,
		},
		{
			name:  "Fraction",
			split: 0.9,
			want:  1,
		},
		{
			name:  "One",
			split: 1,
			want:  1,
		},
		{
			name:  "TruncatesDown",
			split: 1.7,
			want:  1,
		},
		{
			name:  "Half",
			split: 27,
			want:  27,
		},
		{
			name:  "Max",
			split: 54,
			want:  54,
		},
		{
			name:  "AboveMax",
			split: 55,
			want:  54,
		},
		{
			name:  "Negative",
			split: -2,
			want:  1,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ClampSplit(tc.split); got != tc.want {
				t.Errorf("unexpected split, want: %d, got: %d", tc.want, got)
			}
		})
	}
}

func placedWager(t *testing.T, key string, stake string) PlacedWager {
	t.Helper()

	w, err := ParseKey(key)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", key, err)
	}

	return PlacedWager{Wager: w, Stake: decimal.RequireFromString(stake)}
}

// Settling against the full deck makes every win count deterministic: 24 red
// cards, 13 per suit, 16 royals, 4 per rank, 2 jokers and 1 exact card.
func TestSettleFullDeck(t *testing.T) {
	cases := []struct {
		name       string
		key        string
		stake      string
		wantWins   int
		wantPayout string
	}{
		{
			name:       "ColorRed",
			key:        "color:red",
			stake:      "5.00",
			wantWins:   24,
			wantPayout: "4.44",
		},
		{
			name:       "SuitHearts",
			key:        "suit:hearts",
			stake:      "2.00",
			wantWins:   13,
			wantPayout: "1.93",
		},
		{
			name:       "Royal",
			key:        "royal",
			stake:      "4.00",
			wantWins:   16,
			wantPayout: "3.85",
		},
		{
			name:       "RankSeven",
			key:        "rank:7",
			stake:      "3.00",
			wantWins:   4,
			wantPayout: "2.22",
		},
		{
			name:       "Joker",
			key:        "joker",
			stake:      "1.00",
			wantWins:   2,
			wantPayout: "0.74",
		},
		{
			name:       "ExactCard",
			key:        "card:A:hearts",
			stake:      "10.00",
			wantWins:   1,
			wantPayout: "9.26",
		},
	}

	deck := BuildDeck()

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			settlement := Settle(deck, []PlacedWager{placedWager(t, tc.key, tc.stake)})

			if settlement.Split != DeckSize {
				t.Fatalf("unexpected split, want: %d, got: %d", DeckSize, settlement.Split)
			}
			if len(settlement.Lines) != 1 {
				t.Fatalf("unexpected line count, want: 1, got: %d", len(settlement.Lines))
			}

			line := settlement.Lines[0]

			if line.Wins != tc.wantWins {
				t.Errorf("unexpected wins, want: %d, got: %d", tc.wantWins, line.Wins)
			}
			if got := line.Payout.StringFixed(2); got != tc.wantPayout {
				t.Errorf("unexpected payout, want: %s, got: %s", tc.wantPayout, got)
			}
			if got := settlement.TotalPayout.StringFixed(2); got != tc.wantPayout {
				t.Errorf("unexpected total payout, want: %s, got: %s", tc.wantPayout, got)
			}
		})
	}
}

func TestSettleSumsLines(t *testing.T) {
	deck := BuildDeck()

	wagers := []PlacedWager{
		placedWager(t, "card:A:hearts", "10.00"),
		placedWager(t, "joker", "1.00"),
		placedWager(t, "color:red", "5.00"),
		placedWager(t, "suit:hearts", "2.00"),
		placedWager(t, "royal", "4.00"),
		placedWager(t, "rank:7", "3.00"),
	}

	settlement := Settle(deck, wagers)

	if got := settlement.TotalStake.StringFixed(2); got != "25.00" {
		t.Errorf("unexpected total stake, want: 25.00, got: %s", got)
	}

	sum := decimal.Zero
	for _, line := range settlement.Lines {
		sum = sum.Add(line.Payout)
	}

	if got := settlement.TotalPayout.StringFixed(2); got != sum.Round(2).StringFixed(2) {
		t.Errorf("total payout does not equal the sum of lines, want: %s, got: %s", sum.Round(2).StringFixed(2), got)
	}
	if got := settlement.TotalPayout.StringFixed(2); got != "22.44" {
		t.Errorf("unexpected total payout, want: 22.44, got: %s", got)
	}
	if got := settlement.Profit.StringFixed(2); got != "-2.56" {
		t.Errorf("unexpected profit, want: -2.56, got: %s", got)
	}
}

func TestSettleSingleCard(t *testing.T) {
	deck := BuildDeck()

	// Card 0 is the ace of hearts by build order.
	drawn := deck[:1]

	cases := []struct {
		name       string
		key        string
		stake      string
		wantWins   int
		wantPayout string
		wantProfit string
	}{
		{
			name:       "RedWinDoubles",
			key:        "color:red",
			stake:      "5.00",
			wantWins:   1,
			wantPayout: "10.00",
			wantProfit: "5.00",
		},
		{
			name:       "BlackLosesStake",
			key:        "color:black",
			stake:      "5.00",
			wantWins:   0,
			wantPayout: "0.00",
			wantProfit: "-5.00",
		},
		{
			name:       "ExactCardFullMultiplier",
			key:        "card:A:hearts",
			stake:      "1.00",
			wantWins:   1,
			wantPayout: "50.00",
			wantProfit: "49.00",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			settlement := Settle(drawn, []PlacedWager{placedWager(t, tc.key, tc.stake)})

			line := settlement.Lines[0]

			if line.Wins != tc.wantWins {
				t.Errorf("unexpected wins, want: %d, got: %d", tc.wantWins, line.Wins)
			}
			if got := line.Payout.StringFixed(2); got != tc.wantPayout {
				t.Errorf("unexpected payout, want: %s, got: %s", tc.wantPayout, got)
			}
			if got := settlement.Profit.StringFixed(2); got != tc.wantProfit {
				t.Errorf("unexpected profit, want: %s, got: %s", tc.wantProfit, got)
			}
		})
	}
}
