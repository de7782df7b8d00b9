package clear_bet

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	resp "github.com/louisfh66/card-roulette/internal/lib/api/response"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/session"
	"golang.org/x/exp/slog"
	"net/http"
)

type Response struct {
	resp.Response
	Session model.Session `json:"session"`
	Refund  string        `json:"refund"`
}

type SessionProvider interface {
	Find(id uuid.UUID) (*session.Session, error)
	Save(sess *session.Session)
}

type Clear struct {
	log       *slog.Logger
	sessions  SessionProvider
	publisher event.Publisher
}

func NewClear(log *slog.Logger, sessions SessionProvider, publisher event.Publisher) *Clear {
	return &Clear{
		log:       log,
		sessions:  sessions,
		publisher: publisher,
	}
}

func (c *Clear) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bet.clear.New"

		log := c.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			log.Error("invalid session uuid", sl.Err(err))

			render.JSON(w, r, resp.Error("invalid session uuid", http.StatusBadRequest))

			return
		}

		sess, err := c.sessions.Find(id)
		if err != nil {
			log.Error("failed to find session", sl.Err(err))

			render.JSON(w, r, resp.Error("session not found", http.StatusNotFound))

			return
		}

		refund, err := sess.ClearBoard()
		if err != nil {
			if errors.Is(err, session.ErrRoundInProgress) {
				log.Info("board clear rejected", sl.Err(err))

				render.JSON(w, r, resp.Error("round in progress", http.StatusBadRequest))

				return
			}

			log.Error("failed to clear board", sl.Err(err))

			render.JSON(w, r, resp.Error("failed to clear board", http.StatusInternalServerError))

			return
		}

		c.sessions.Save(sess)

		st := sess.Snapshot()

		log.Info("board cleared",
			sl.Amount("refund", refund),
			sl.Amount("balance", st.Balance))

		data := map[string]interface{}{
			"refund":  converter.ConvertAmountDecimalToString(refund),
			"balance": converter.ConvertAmountDecimalToString(st.Balance),
			"flow":    string(config.FlowIncome),
		}

		if err = c.publisher.TriggerEvent(event.Message{
			Channel: event.SessionChannel(id),
			Event:   event.BoardCleared,
			Data:    data,
		}); err != nil {
			log.Error("failed to publish clear event", sl.Err(err))
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Session:  model.SessionFromState(st),
			Refund:   converter.ConvertAmountDecimalToString(refund),
		})
	}
}
