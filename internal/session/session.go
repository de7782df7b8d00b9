package session

import (
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/shopspring/decimal"
	"sort"
	"strings"
	"sync"
	"time"
)

// HistoryLimit caps the round history; the oldest record is evicted first.
const HistoryLimit = 25

// Round is the immutable record of one settled round.
type Round struct {
	ID          uuid.UUID               `json:"id"`
	At          time.Time               `json:"at"`
	Summary     string                  `json:"summary"`
	Split       int                     `json:"split"`
	Lines       []domain.SettlementLine `json:"lines"`
	TotalStake  decimal.Decimal         `json:"total_stake"`
	TotalPayout decimal.Decimal         `json:"total_payout"`
	Profit      decimal.Decimal         `json:"profit"`
	Cards       []string                `json:"cards"`
}

// Session is one player's game state: ledger, bet board, drawn cards and
// round history. All methods are safe for concurrent use; every mutation is
// atomic under the session lock, so no caller ever observes a half-applied
// placement or settlement.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	createdAt time.Time

	deck     []domain.Card
	shuffler *domain.Shuffler

	startingBalance decimal.Decimal
	balance         decimal.Decimal
	totalStaked     decimal.Decimal
	totalPaidOut    decimal.Decimal

	board        map[string]decimal.Decimal
	history      []Round
	roundsPlayed int

	drawn    []domain.Card
	revealed int
	dealing  bool

	// revealGen invalidates reveal steps scheduled before a reset: a step
	// whose generation does not match is a no-op.
	revealGen uint64
	cancels   []func()
}

// New returns a fresh session with the given starting balance. The deck is
// shared and read-only; the shuffler may be shared across sessions.
func New(id uuid.UUID, startingBalance decimal.Decimal, deck []domain.Card, shuffler *domain.Shuffler) *Session {
	return &Session{
		id:              id,
		createdAt:       time.Now(),
		deck:            deck,
		shuffler:        shuffler,
		startingBalance: startingBalance.Round(2),
		balance:         startingBalance.Round(2),
		board:           make(map[string]decimal.Decimal),
	}
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// PlaceChip adds amount to the stake accumulated on the given board key and
// deducts it from the balance. Rejected without any state change when a round
// is being revealed, the key names no board cell, the amount is not positive,
// or the balance cannot cover it.
func (s *Session) PlaceChip(key string, amount decimal.Decimal) error {
	wager, err := domain.ParseKey(key)
	if err != nil {
		return err
	}

	amount = amount.Round(2)
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dealing {
		return ErrRoundInProgress
	}
	if s.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	k := wager.Key()
	s.board[k] = s.board[k].Add(amount).Round(2)
	s.balance = s.balance.Sub(amount).Round(2)
	s.totalStaked = s.totalStaked.Add(amount).Round(2)
	return nil
}

// ClearBoard refunds every accumulated stake to the balance and empties the
// board. Rejected while a round is being revealed. Returns the refunded sum.
func (s *Session) ClearBoard() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dealing {
		return decimal.Zero, ErrRoundInProgress
	}

	refund := s.boardTotalLocked()
	s.balance = s.balance.Add(refund).Round(2)
	s.totalStaked = s.totalStaked.Sub(refund).Round(2)
	s.board = make(map[string]decimal.Decimal)
	return refund, nil
}

// Deal settles one round: draws the clamped split count of cards without
// replacement, evaluates every active wager, credits the payout, records the
// round and clears the board. Win or lose, stakes are consumed. The whole
// update is one atomic step; the reveal that follows is cosmetic only.
// Rejected when the board is empty or a reveal is still running.
func (s *Session) Deal(split float64) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dealing {
		return Round{}, ErrRoundInProgress
	}
	if len(s.board) == 0 {
		return Round{}, ErrEmptyBoard
	}

	n := domain.ClampSplit(split)
	drawn := s.shuffler.Draw(s.deck, n)
	settlement := domain.Settle(drawn, s.placedWagersLocked())

	s.balance = s.balance.Add(settlement.TotalPayout).Round(2)
	s.totalPaidOut = s.totalPaidOut.Add(settlement.TotalPayout).Round(2)

	round := Round{
		ID:          uuid.New(),
		At:          time.Now(),
		Summary:     summarize(settlement.Lines),
		Split:       settlement.Split,
		Lines:       settlement.Lines,
		TotalStake:  settlement.TotalStake,
		TotalPayout: settlement.TotalPayout,
		Profit:      settlement.Profit,
		Cards:       cardLabels(settlement.Cards),
	}

	s.history = append([]Round{round}, s.history...)
	if len(s.history) > HistoryLimit {
		s.history = s.history[:HistoryLimit]
	}
	s.roundsPlayed++

	s.board = make(map[string]decimal.Decimal)
	s.drawn = settlement.Cards
	s.revealed = 0
	s.dealing = true
	s.revealGen++
	s.cancels = nil

	return round, nil
}

// RevealGen returns the generation of the reveal started by the last Deal.
func (s *Session) RevealGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealGen
}

// RegisterRevealCancels hands the session the stop functions of the pending
// reveal timers so Reset can cancel them.
func (s *Session) RegisterRevealCancels(cancels []func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels = cancels
}

// RevealNext flips the next drawn card face up. A step from a stale
// generation, or one arriving after the reveal finished, reports ok=false and
// changes nothing. done is true once the last card is revealed, at which
// point the dealing guard lifts.
func (s *Session) RevealNext(gen uint64) (card domain.Card, index int, done bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.revealGen || !s.dealing || s.revealed >= len(s.drawn) {
		return domain.Card{}, 0, false, false
	}

	index = s.revealed
	card = s.drawn[index]
	s.revealed++
	if s.revealed == len(s.drawn) {
		s.dealing = false
		done = true
	}
	return card, index, done, true
}

// StopReveals cancels any pending reveal steps without touching funds. Used
// when a session is evicted while a reveal is still running.
func (s *Session) StopReveals() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopRevealsLocked()
}

func (s *Session) stopRevealsLocked() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.revealGen++
	s.dealing = false
	s.drawn = nil
	s.revealed = 0
}

// Reset cancels any pending reveal steps and restores the session to its
// starting state: starting balance, empty board, empty history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopRevealsLocked()

	s.balance = s.startingBalance
	s.totalStaked = decimal.Zero
	s.totalPaidOut = decimal.Zero
	s.board = make(map[string]decimal.Decimal)
	s.history = nil
	s.roundsPlayed = 0
}

func (s *Session) placedWagersLocked() []domain.PlacedWager {
	keys := make([]string, 0, len(s.board))
	for k := range s.board {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	wagers := make([]domain.PlacedWager, 0, len(keys))
	for _, k := range keys {
		// Keys on the board were validated by PlaceChip.
		w, _ := domain.ParseKey(k)
		wagers = append(wagers, domain.PlacedWager{Wager: w, Stake: s.board[k]})
	}
	return wagers
}

func (s *Session) boardTotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, stake := range s.board {
		total = total.Add(stake)
	}
	return total.Round(2)
}

func summarize(lines []domain.SettlementLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Stake.StringFixed(2)+" on "+l.Label)
	}
	return strings.Join(parts, ", ")
}

func cardLabels(cards []domain.Card) []string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.Label)
	}
	return labels
}
