package place_bet

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	resp "github.com/louisfh66/card-roulette/internal/lib/api/response"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/session"
	"golang.org/x/exp/slog"
	"net/http"
)

type Request struct {
	Key    string  `json:"key" validate:"required"`
	Amount float64 `json:"amount" validate:"required,min=0.01"`
}

type Response struct {
	resp.Response
	Session model.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=SessionProvider
type SessionProvider interface {
	Find(id uuid.UUID) (*session.Session, error)
	Save(sess *session.Session)
}

type Bet struct {
	log       *slog.Logger
	validator *validator.Validate
	sessions  SessionProvider
	publisher event.Publisher
	chips     map[string]struct{}
}

func NewBet(
	log *slog.Logger,
	sessions SessionProvider,
	publisher event.Publisher,
	game config.Game) *Bet {
	chips := make(map[string]struct{}, len(game.ChipDenominations))
	for _, d := range game.ChipDenominations {
		chips[converter.ConvertAmountDecimalToString(converter.ConvertAmountFloatToDecimal(d))] = struct{}{}
	}

	return &Bet{
		log:       log,
		validator: validator.New(),
		sessions:  sessions,
		publisher: publisher,
		chips:     chips,
	}
}

func (b *Bet) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bet.place.New"

		var (
			err  error
			req  Request
			sess *session.Session
		)

		log := b.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to decode request body", http.StatusBadRequest))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = b.validator.Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			log.Error("invalid session uuid", sl.Err(err))

			render.JSON(w, r, resp.Error("invalid session uuid", http.StatusBadRequest))

			return
		}

		sess, err = b.sessions.Find(id)
		if err != nil {
			log.Error("failed to find session", sl.Err(err))

			render.JSON(w, r, resp.Error("session not found", http.StatusNotFound))

			return
		}

		amount := converter.ConvertAmountFloatToDecimal(req.Amount)

		if _, ok := b.chips[converter.ConvertAmountDecimalToString(amount)]; !ok {
			log.Info("rejected chip of unknown denomination",
				slog.String("amount", converter.ConvertAmountDecimalToString(amount)))

			render.JSON(w, r, resp.Error("amount is not a valid chip denomination", http.StatusBadRequest))

			return
		}

		if err = sess.PlaceChip(req.Key, amount); err != nil {
			log.Info("chip rejected", sl.Err(err))

			render.JSON(w, r, resp.Error(rejectionMessage(err), http.StatusBadRequest))

			return
		}

		b.sessions.Save(sess)

		st := sess.Snapshot()

		log.Info("chip placed",
			slog.String("key", req.Key),
			sl.Amount("amount", amount),
			sl.Amount("balance", st.Balance))

		data := map[string]interface{}{
			"key":         req.Key,
			"amount":      converter.ConvertAmountDecimalToString(amount),
			"board_total": converter.ConvertAmountDecimalToString(st.BoardTotal),
			"balance":     converter.ConvertAmountDecimalToString(st.Balance),
			"flow":        string(config.FlowOutcome),
		}

		if err = b.publisher.TriggerEvent(event.Message{
			Channel: event.SessionChannel(id),
			Event:   event.ChipPlaced,
			Data:    data,
		}); err != nil {
			log.Error("failed to publish chip event", sl.Err(err))
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Session:  model.SessionFromState(st),
		})
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidKey):
		return "unknown board cell"
	case errors.Is(err, session.ErrRoundInProgress):
		return "round in progress"
	case errors.Is(err, session.ErrInsufficientBalance):
		return "insufficient balance"
	case errors.Is(err, session.ErrInvalidAmount):
		return "invalid chip amount"
	default:
		return "failed to place chip"
	}
}
