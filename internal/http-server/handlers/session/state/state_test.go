package state

import (
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/repository"
	"github.com/louisfh66/card-roulette/internal/session"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newStateServer(t *testing.T) (*chi.Mux, *session.Session) {
	t.Helper()

	repo := repository.NewSessionRepository(time.Minute, time.Minute)

	sess := session.New(
		uuid.New(),
		decimal.RequireFromString("100.00"),
		domain.BuildDeck(),
		domain.NewSeededShuffler(1),
	)
	repo.Save(sess)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewState(log, repo, config.Game{
		ChipDenominations: []float64{1, 5},
	})

	router := chi.NewRouter()
	router.Get("/session/{uuid}", handler.New())

	return router, sess
}

func getState(t *testing.T, router *chi.Mux, target string) Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/session/"+target, nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	var response Response
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return response
}

func TestStateHandler(t *testing.T) {
	router, sess := newStateServer(t)

	if err := sess.PlaceChip("suit:spades", decimal.RequireFromString("5.00")); err != nil {
		t.Fatalf("failed to place chip: %v", err)
	}

	response := getState(t, router, sess.ID().String())

	if response.Status != http.StatusOK {
		t.Fatalf("unexpected status, want: %d, got: %d (%s)", http.StatusOK, response.Status, response.Error)
	}

	view := response.Session

	if view.UUID != sess.ID() {
		t.Errorf("unexpected session uuid, want: %s, got: %s", sess.ID(), view.UUID)
	}

	if view.Balance != "95.00" {
		t.Errorf("unexpected balance, want: 95.00, got: %s", view.Balance)
	}

	if len(view.Board) != 1 {
		t.Fatalf("unexpected board size, want: 1, got: %d", len(view.Board))
	}

	cell := view.Board[0]
	if cell.Key != "suit:spades" || cell.Stake != "5.00" || cell.Multiplier != "4" {
		t.Errorf("unexpected board cell, got: %+v", cell)
	}

	if len(response.Chips) != 2 {
		t.Errorf("unexpected chip count, want: 2, got: %d", len(response.Chips))
	}

	if len(response.Multipliers) != 6 || response.Multipliers["royal"] != "3.25" {
		t.Errorf("unexpected multiplier table, got: %v", response.Multipliers)
	}
}

func TestStateHandlerRejections(t *testing.T) {
	cases := []struct {
		name       string
		uuidPath   string
		wantStatus int
	}{
		{
			name:       "UnknownSession",
			uuidPath:   uuid.Nil.String(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "MalformedUUID",
			uuidPath:   "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			router, _ := newStateServer(t)

			response := getState(t, router, tc.uuidPath)

			if response.Status != tc.wantStatus {
				t.Errorf("unexpected status, want: %d, got: %d", tc.wantStatus, response.Status)
			}
		})
	}
}
