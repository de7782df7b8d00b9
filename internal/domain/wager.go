package domain

import (
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
)

// Kind discriminates the six wager variants on the bet board.
type Kind string

const (
	KindColor Kind = "color"
	KindSuit  Kind = "suit"
	KindRoyal Kind = "royal"
	KindRank  Kind = "rank"
	KindJoker Kind = "joker"
	KindCard  Kind = "card"
)

// Return multipliers per wager kind. Fixed: a multiplier depends on the kind
// only, never on the stake or the outcome.
var multipliers = map[Kind]decimal.Decimal{
	KindColor: decimal.NewFromInt(2),
	KindSuit:  decimal.NewFromInt(4),
	KindRoyal: decimal.RequireFromString("3.25"),
	KindRank:  decimal.NewFromInt(10),
	KindJoker: decimal.NewFromInt(20),
	KindCard:  decimal.NewFromInt(50),
}

// ErrInvalidKey is returned by ParseKey for strings that name no board cell.
var ErrInvalidKey = errors.New("invalid bet key")

// Wager is a typed prediction about the drawn cards. Only the fields relevant
// to the Kind are set: Color for KindColor, Suit for KindSuit, Rank for
// KindRank, and Rank+Suit for KindCard.
type Wager struct {
	Kind  Kind  `json:"kind"`
	Color Color `json:"color,omitempty"`
	Suit  Suit  `json:"suit,omitempty"`
	Rank  Rank  `json:"rank,omitempty"`
}

// Key derives the deterministic board key identifying this wager, e.g.
// "color:red", "suit:hearts", "royal", "rank:7", "joker" or "card:A:hearts".
// ParseKey inverts it.
func (w Wager) Key() string {
	switch w.Kind {
	case KindColor:
		return "color:" + string(w.Color)
	case KindSuit:
		return "suit:" + string(w.Suit)
	case KindRank:
		return "rank:" + string(w.Rank)
	case KindCard:
		return "card:" + string(w.Rank) + ":" + string(w.Suit)
	}
	return string(w.Kind)
}

// ParseKey resolves a board key back into its typed wager. Unknown or
// malformed keys yield ErrInvalidKey.
func ParseKey(key string) (Wager, error) {
	const op = "domain.ParseKey"

	switch key {
	case "royal":
		return Wager{Kind: KindRoyal}, nil
	case "joker":
		return Wager{Kind: KindJoker}, nil
	}

	parts := strings.Split(key, ":")
	switch {
	case len(parts) == 2 && parts[0] == "color":
		c := Color(parts[1])
		if c != ColorRed && c != ColorBlack {
			return Wager{}, fmt.Errorf("%s: %q: %w", op, key, ErrInvalidKey)
		}
		return Wager{Kind: KindColor, Color: c}, nil
	case len(parts) == 2 && parts[0] == "suit":
		s := Suit(parts[1])
		if !validSuit(s) {
			return Wager{}, fmt.Errorf("%s: %q: %w", op, key, ErrInvalidKey)
		}
		return Wager{Kind: KindSuit, Suit: s}, nil
	case len(parts) == 2 && parts[0] == "rank":
		r := Rank(parts[1])
		if !validRank(r) {
			return Wager{}, fmt.Errorf("%s: %q: %w", op, key, ErrInvalidKey)
		}
		return Wager{Kind: KindRank, Rank: r}, nil
	case len(parts) == 3 && parts[0] == "card":
		r, s := Rank(parts[1]), Suit(parts[2])
		if !validRank(r) || !validSuit(s) {
			return Wager{}, fmt.Errorf("%s: %q: %w", op, key, ErrInvalidKey)
		}
		return Wager{Kind: KindCard, Rank: r, Suit: s}, nil
	}

	return Wager{}, fmt.Errorf("%s: %q: %w", op, key, ErrInvalidKey)
}

// Multiplier returns the fixed payout factor for this wager's kind.
func (w Wager) Multiplier() decimal.Decimal {
	return multipliers[w.Kind]
}

// Multipliers returns the payout factor per wager kind.
func Multipliers() map[Kind]decimal.Decimal {
	table := make(map[Kind]decimal.Decimal, len(multipliers))
	for k, m := range multipliers {
		table[k] = m
	}
	return table
}

// Matches reports whether a drawn card satisfies the wager. Jokers are
// colorless and rankless for matching purposes: they satisfy only KindJoker.
func (w Wager) Matches(c Card) bool {
	switch w.Kind {
	case KindColor:
		return c.Color == w.Color
	case KindSuit:
		return c.Suit == w.Suit
	case KindRoyal:
		return !c.IsJoker() && c.Rank.IsRoyal()
	case KindRank:
		return !c.IsJoker() && c.Rank == w.Rank
	case KindJoker:
		return c.IsJoker()
	case KindCard:
		return c.Suit == w.Suit && c.Rank == w.Rank
	}
	return false
}

// Label renders the wager for round summaries and the board UI.
func (w Wager) Label() string {
	switch w.Kind {
	case KindColor:
		return titled(string(w.Color))
	case KindSuit:
		return titled(string(w.Suit))
	case KindRoyal:
		return "Royal"
	case KindRank:
		return "Any " + string(w.Rank)
	case KindJoker:
		return "Joker"
	case KindCard:
		return string(w.Rank) + w.Suit.Symbol()
	}
	return string(w.Kind)
}

// AllKeys enumerates every valid board key: 2 colors, 4 suits, royal, joker,
// 13 ranks and 52 exact cards, 73 cells in total.
func AllKeys() []string {
	keys := make([]string, 0, 73)
	keys = append(keys,
		Wager{Kind: KindColor, Color: ColorRed}.Key(),
		Wager{Kind: KindColor, Color: ColorBlack}.Key(),
	)
	for _, s := range Suits {
		keys = append(keys, Wager{Kind: KindSuit, Suit: s}.Key())
	}
	keys = append(keys, Wager{Kind: KindRoyal}.Key(), Wager{Kind: KindJoker}.Key())
	for _, r := range Ranks {
		keys = append(keys, Wager{Kind: KindRank, Rank: r}.Key())
	}
	for _, s := range Suits {
		for _, r := range Ranks {
			keys = append(keys, Wager{Kind: KindCard, Rank: r, Suit: s}.Key())
		}
	}
	return keys
}

func validSuit(s Suit) bool {
	for _, v := range Suits {
		if s == v {
			return true
		}
	}
	return false
}

func validRank(r Rank) bool {
	for _, v := range Ranks {
		if r == v {
			return true
		}
	}
	return false
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
