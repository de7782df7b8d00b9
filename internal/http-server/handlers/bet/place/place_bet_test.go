package place_bet

import (
	"bytes"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/repository"
	"github.com/louisfh66/card-roulette/internal/session"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testGame() config.Game {
	return config.Game{
		StartingBalance:   100,
		ChipDenominations: []float64{0.1, 0.5, 1, 5, 10, 25, 100},
		RevealInterval:    time.Millisecond,
		SessionTTL:        time.Minute,
	}
}

func testRouter(t *testing.T, balance string) (*chi.Mux, *session.Session) {
	t.Helper()

	repo := repository.NewSessionRepository(time.Minute, time.Minute)

	sess := session.New(
		uuid.New(),
		decimal.RequireFromString(balance),
		domain.BuildDeck(),
		domain.NewSeededShuffler(1),
	)
	repo.Save(sess)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewBet(log, repo, event.NopPublisher{}, testGame())

	router := chi.NewRouter()
	router.Post("/session/{uuid}/bet", handler.New())

	return router, sess
}

func TestPlaceBetHandler(t *testing.T) {
	cases := []struct {
		name        string
		balance     string
		body        string
		uuidPath    string
		wantStatus  int
		wantError   string
		wantBalance string
	}{
		{
			name:        "Ok",
			balance:     "100.00",
			body:        `{"key": "color:red", "amount": 5}`,
			wantStatus:  http.StatusOK,
			wantBalance: "95.00",
		},
		{
			name:        "AccumulatesDecimalChips",
			balance:     "100.00",
			body:        `{"key": "rank:7", "amount": 0.1}`,
			wantStatus:  http.StatusOK,
			wantBalance: "99.90",
		},
		{
			name:       "MissingKey",
			balance:    "100.00",
			body:       `{"amount": 5}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "field Key is required",
		},
		{
			name:       "MissingAmount",
			balance:    "100.00",
			body:       `{"key": "color:red"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "field Amount is required",
		},
		{
			name:       "UnknownCell",
			balance:    "100.00",
			body:       `{"key": "color:green", "amount": 5}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown board cell",
		},
		{
			name:       "UnknownDenomination",
			balance:    "100.00",
			body:       `{"key": "color:red", "amount": 0.17}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "amount is not a valid chip denomination",
		},
		{
			name:       "InsufficientBalance",
			balance:    "1.00",
			body:       `{"key": "color:red", "amount": 5}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "insufficient balance",
		},
		{
			name:       "UnknownSession",
			balance:    "100.00",
			body:       `{"key": "color:red", "amount": 5}`,
			uuidPath:   uuid.Nil.String(),
			wantStatus: http.StatusNotFound,
			wantError:  "session not found",
		},
		{
			name:       "MalformedUUID",
			balance:    "100.00",
			body:       `{"key": "color:red", "amount": 5}`,
			uuidPath:   "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid session uuid",
		},
		{
			name:       "MalformedBody",
			balance:    "100.00",
			body:       `{"key": `,
			wantStatus: http.StatusBadRequest,
			wantError:  "failed to decode request body",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			router, sess := testRouter(t, tc.balance)

			target := tc.uuidPath
			if target == "" {
				target = sess.ID().String()
			}

			req := httptest.NewRequest(http.MethodPost, "/session/"+target+"/bet", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			var response Response
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if response.Status != tc.wantStatus {
				t.Errorf("unexpected status, want: %d, got: %d", tc.wantStatus, response.Status)
			}

			if tc.wantError != "" && !strings.Contains(response.Error, tc.wantError) {
				t.Errorf("unexpected error, want it to contain: %q, got: %q", tc.wantError, response.Error)
			}

			if tc.wantBalance != "" {
				if response.Session.Balance != tc.wantBalance {
					t.Errorf("unexpected balance, want: %s, got: %s", tc.wantBalance, response.Session.Balance)
				}
				if got := sess.Snapshot().Balance.StringFixed(2); got != tc.wantBalance {
					t.Errorf("unexpected session balance, want: %s, got: %s", tc.wantBalance, got)
				}
			}
		})
	}
}
