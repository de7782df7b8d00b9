package state

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	resp "github.com/louisfh66/card-roulette/internal/lib/api/response"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/session"
	"golang.org/x/exp/slog"
	"net/http"
)

type Response struct {
	resp.Response
	Session     model.Session     `json:"session"`
	Chips       []string          `json:"chips"`
	Multipliers map[string]string `json:"multipliers"`
}

type SessionFinder interface {
	Find(id uuid.UUID) (*session.Session, error)
}

type State struct {
	log    *slog.Logger
	finder SessionFinder
	game   config.Game
}

func NewState(log *slog.Logger, finder SessionFinder, game config.Game) *State {
	return &State{
		log:    log,
		finder: finder,
		game:   game,
	}
}

func (s *State) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.state.New"

		log := s.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := uuid.Parse(chi.URLParam(r, "uuid"))
		if err != nil {
			log.Error("invalid session uuid", sl.Err(err))

			render.JSON(w, r, resp.Error("invalid session uuid", http.StatusBadRequest))

			return
		}

		sess, err := s.finder.Find(id)
		if err != nil {
			log.Error("failed to find session", sl.Err(err))

			render.JSON(w, r, resp.Error("session not found", http.StatusNotFound))

			return
		}

		render.JSON(w, r, Response{
			Response:    resp.OK(),
			Session:     model.SessionFromState(sess.Snapshot()),
			Chips:       model.ChipsFromDenominations(s.game.ChipDenominations),
			Multipliers: model.MultiplierTable(),
		})
	}
}
