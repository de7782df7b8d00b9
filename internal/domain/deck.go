package domain

import (
	crand "crypto/rand"
	mrand "math/rand/v2"
	"sync"
)

const (
	// DeckSize is the full deck: 13 ranks x 4 suits plus two jokers.
	DeckSize = 54
	// JokerCount is the number of jokers appended after the standard cards.
	JokerCount = 2
)

// BuildDeck returns the fixed 54-card deck in build order: the four suits in
// Suits order, each holding the thirteen ranks in Ranks order, followed by the
// two jokers. Card IDs are the build positions 0..53. The result is meant to
// be built once and treated as read-only.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{
				ID:    len(deck),
				Suit:  s,
				Rank:  r,
				Color: ColorOf(s),
				Label: cardLabel(r, s),
			})
		}
	}
	for i := 0; i < JokerCount; i++ {
		deck = append(deck, Card{
			ID:    len(deck),
			Suit:  SuitJoker,
			Rank:  RankJoker,
			Color: ColorNone,
			Label: cardLabel(RankJoker, SuitJoker),
		})
	}
	return deck
}

// Shuffler produces random permutations of a deck. The zero value is not
// usable; construct with NewShuffler or NewSeededShuffler. Safe for
// concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

// NewShuffler returns a shuffler seeded from the platform entropy source.
func NewShuffler() *Shuffler {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("domain: reading entropy for shuffler seed: " + err.Error())
	}
	return &Shuffler{rnd: mrand.New(mrand.NewChaCha8(seed))}
}

// NewSeededShuffler returns a deterministic shuffler for tests.
func NewSeededShuffler(seed uint64) *Shuffler {
	return &Shuffler{rnd: mrand.New(mrand.NewPCG(seed, seed))}
}

// Shuffle returns a new uniformly random permutation of deck. The input is
// never mutated.
func (s *Shuffler) Shuffle(deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)

	s.mu.Lock()
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	s.mu.Unlock()

	return out
}

// Draw deals n cards without replacement: the first n of a fresh permutation
// of deck. n is clamped to [0, len(deck)].
func (s *Shuffler) Draw(deck []Card, n int) []Card {
	if n <= 0 {
		return nil
	}
	if n > len(deck) {
		n = len(deck)
	}
	return s.Shuffle(deck)[:n]
}
