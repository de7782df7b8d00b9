package deal

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	"github.com/louisfh66/card-roulette/internal/job"
	resp "github.com/louisfh66/card-roulette/internal/lib/api/response"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/session"
	"golang.org/x/exp/slog"
	"net/http"
	"time"
)

type Request struct {
	Split float64 `json:"split"`
}

type Response struct {
	resp.Response
	Session model.Session `json:"session"`
}

type SessionProvider interface {
	Find(id uuid.UUID) (*session.Session, error)
	Save(sess *session.Session)
}

type Deal struct {
	log            *slog.Logger
	sessions       SessionProvider
	publisher      event.Publisher
	dispatcher     *job.Dispatcher
	revealInterval time.Duration
}

func NewDeal(
	log *slog.Logger,
	sessions SessionProvider,
	publisher event.Publisher,
	dispatcher *job.Dispatcher,
	game config.Game) *Deal {
	return &Deal{
		log:            log,
		sessions:       sessions,
		publisher:      publisher,
		dispatcher:     dispatcher,
		revealInterval: game.RevealInterval,
	}
}

func (d *Deal) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.round.deal.New"

		var (
			err  error
			req  Request
			sess *session.Session
		)

		log := d.log.With(
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

		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			log.Error("invalid session uuid", sl.Err(err))

			render.JSON(w, r, resp.Error("invalid session uuid", http.StatusBadRequest))

			return
		}

		sess, err = d.sessions.Find(id)
		if err != nil {
			log.Error("failed to find session", sl.Err(err))

			render.JSON(w, r, resp.Error("session not found", http.StatusNotFound))

			return
		}

		round, err := sess.Deal(req.Split)
		if err != nil {
			log.Info("deal rejected", sl.Err(err))

			render.JSON(w, r, resp.Error(rejectionMessage(err), http.StatusBadRequest))

			return
		}

		d.sessions.Save(sess)

		st := sess.Snapshot()

		log.Info("round settled",
			slog.String("round_uuid", round.ID.String()),
			slog.Int("split", round.Split),
			sl.Amount("total_stake", round.TotalStake),
			sl.Amount("total_payout", round.TotalPayout),
			sl.Amount("balance", st.Balance))

		data := map[string]interface{}{
			"uuid":         round.ID.String(),
			"split":        round.Split,
			"total_stake":  converter.ConvertAmountDecimalToString(round.TotalStake),
			"total_payout": converter.ConvertAmountDecimalToString(round.TotalPayout),
			"profit":       converter.ConvertAmountDecimalToString(round.Profit),
			"balance":      converter.ConvertAmountDecimalToString(st.Balance),
			"flow":         string(config.FlowIncome),
		}

		if err = d.publisher.TriggerEvent(event.Message{
			Channel: event.SessionChannel(id),
			Event:   event.RoundSettled,
			Data:    data,
		}); err != nil {
			log.Error("failed to publish settle event", sl.Err(err))
		}

		gen := sess.RevealGen()

		cancels := make([]func(), 0, round.Split)
		for i := 0; i < round.Split; i++ {
			step := &RevealStepJob{
				log:       d.log,
				publisher: d.publisher,
				sess:      sess,
				gen:       gen,
			}

			cancels = append(cancels, d.dispatcher.Dispatch(step, time.Duration(i+1)*d.revealInterval))
		}

		sess.RegisterRevealCancels(cancels)

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Session:  model.SessionFromState(st),
		})
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyBoard):
		return "no active bets on the board"
	case errors.Is(err, session.ErrRoundInProgress):
		return "round in progress"
	default:
		return "failed to deal"
	}
}
