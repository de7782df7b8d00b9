package model

import (
	"github.com/louisfh66/card-roulette/internal/domain"
)

type Card struct {
	ID    int    `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// TableCard is one card on the table. The identity stays hidden until the
// reveal sequence flips it face up.
type TableCard struct {
	Revealed bool  `json:"revealed"`
	Card     *Card `json:"card,omitempty"`
}

func CardFromDomain(c domain.Card) Card {
	return Card{
		ID:    c.ID,
		Suit:  string(c.Suit),
		Rank:  string(c.Rank),
		Color: string(c.Color),
		Label: c.Label,
	}
}
