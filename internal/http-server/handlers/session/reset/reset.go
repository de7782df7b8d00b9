package reset

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
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
}

type SessionProvider interface {
	Find(id uuid.UUID) (*session.Session, error)
	Save(sess *session.Session)
}

type Reset struct {
	log       *slog.Logger
	sessions  SessionProvider
	publisher event.Publisher
}

func NewReset(log *slog.Logger, sessions SessionProvider, publisher event.Publisher) *Reset {
	return &Reset{
		log:       log,
		sessions:  sessions,
		publisher: publisher,
	}
}

func (rs *Reset) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.reset.New"

		log := rs.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			log.Error("invalid session uuid", sl.Err(err))

			render.JSON(w, r, resp.Error("invalid session uuid", http.StatusBadRequest))

			return
		}

		sess, err := rs.sessions.Find(id)
		if err != nil {
			log.Error("failed to find session", sl.Err(err))

			render.JSON(w, r, resp.Error("session not found", http.StatusNotFound))

			return
		}

		sess.Reset()

		rs.sessions.Save(sess)

		st := sess.Snapshot()

		log.Info("session reset", sl.Amount("balance", st.Balance))

		data := map[string]interface{}{
			"balance": converter.ConvertAmountDecimalToString(st.Balance),
		}

		if err = rs.publisher.TriggerEvent(event.Message{
			Channel: event.SessionChannel(id),
			Event:   event.SessionReset,
			Data:    data,
		}); err != nil {
			log.Error("failed to publish reset event", sl.Err(err))
		}

		render.JSON(w, r, Response{
			Response: resp.OK(),
			Session:  model.SessionFromState(st),
		})
	}
}
