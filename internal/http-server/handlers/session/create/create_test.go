package create

import (
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/repository"
	"golang.org/x/exp/slog"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestCreateHandler(t *testing.T) {
	repo := repository.NewSessionRepository(time.Minute, time.Minute)

	game := config.Game{
		StartingBalance:   1000,
		ChipDenominations: []float64{0.1, 0.5, 1, 5, 10, 25, 100},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewCreate(log, repo, domain.BuildDeck(), domain.NewSeededShuffler(1), game)

	router := chi.NewRouter()
	router.Post("/session", handler.New())

	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	var response Response
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != http.StatusOK {
		t.Fatalf("unexpected status, want: %d, got: %d (%s)", http.StatusOK, response.Status, response.Error)
	}

	view := response.Session

	if view.UUID == uuid.Nil {
		t.Error("expected a session uuid")
	}

	if view.Balance != "1000.00" {
		t.Errorf("unexpected balance, want: 1000.00, got: %s", view.Balance)
	}

	if view.StartingBalance != "1000.00" {
		t.Errorf("unexpected starting balance, want: 1000.00, got: %s", view.StartingBalance)
	}

	if view.Dealing {
		t.Error("expected a fresh session to not be dealing")
	}

	if len(view.Board) != 0 || len(view.History) != 0 || view.RoundsPlayed != 0 {
		t.Error("expected a fresh session to have no bets and no history")
	}

	wantChips := []string{"0.10", "0.50", "1.00", "5.00", "10.00", "25.00", "100.00"}
	if !reflect.DeepEqual(response.Chips, wantChips) {
		t.Errorf("unexpected chips, want: %v, got: %v", wantChips, response.Chips)
	}

	wantMultipliers := map[string]string{
		"color": "2",
		"suit":  "4",
		"royal": "3.25",
		"rank":  "10",
		"joker": "20",
		"card":  "50",
	}
	if !reflect.DeepEqual(response.Multipliers, wantMultipliers) {
		t.Errorf("unexpected multipliers, want: %v, got: %v", wantMultipliers, response.Multipliers)
	}

	if repo.Count() != 1 {
		t.Errorf("unexpected repository size, want: 1, got: %d", repo.Count())
	}

	if _, err := repo.Find(view.UUID); err != nil {
		t.Errorf("failed to find the created session: %v", err)
	}
}
