package domain

// Suit identifies one of the four standard suits, or the joker pseudo-suit.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitJoker    Suit = "joker"
)

// Suits lists the four standard suits in deck-build order. Jokers are not
// part of this list; the two joker cards are appended by BuildDeck.
var Suits = [4]Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

var suitSymbols = map[Suit]string{
	SuitHearts:   "♥",
	SuitDiamonds: "♦",
	SuitClubs:    "♣",
	SuitSpades:   "♠",
}

// Symbol returns the one-rune glyph for a standard suit ("♥", "♦", "♣", "♠").
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Rank is the face value of a card. Standard ranks use the short board
// tokens "A", "2".."10", "J", "Q", "K"; the two jokers share RankJoker.
type Rank string

const (
	RankAce   Rank = "A"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankJoker Rank = "joker"
)

// Ranks lists the thirteen standard ranks in deck-build order.
var Ranks = [13]Rank{RankAce, "2", "3", "4", "5", "6", "7", "8", "9", "10", RankJack, RankQueen, RankKing}

var royalRanks = map[Rank]bool{
	RankAce:   true,
	RankKing:  true,
	RankQueen: true,
	RankJack:  true,
}

// IsRoyal reports whether the rank is one of A, K, Q, J.
func (r Rank) IsRoyal() bool {
	return royalRanks[r]
}

// Color is the card color derived from its suit. Jokers are colorless.
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorNone  Color = "none"
)

// ColorOf maps a suit to its color: hearts/diamonds red, clubs/spades black,
// joker none.
func ColorOf(s Suit) Color {
	switch s {
	case SuitHearts, SuitDiamonds:
		return ColorRed
	case SuitClubs, SuitSpades:
		return ColorBlack
	}
	return ColorNone
}

// Card is a single card of the 54-card deck. Cards are value types built once
// by BuildDeck and never mutated.
type Card struct {
	ID    int    `json:"id"`
	Suit  Suit   `json:"suit"`
	Rank  Rank   `json:"rank"`
	Color Color  `json:"color"`
	Label string `json:"label"`
}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c.Suit == SuitJoker
}

// String returns the display label, e.g. "A♥", "10♠" or "Joker".
func (c Card) String() string {
	return c.Label
}

func cardLabel(r Rank, s Suit) string {
	if s == SuitJoker {
		return "Joker"
	}
	return string(r) + s.Symbol()
}
