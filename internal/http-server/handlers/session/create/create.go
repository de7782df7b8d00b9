package create

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	resp "github.com/louisfh66/card-roulette/internal/lib/api/response"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
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

type SessionSaver interface {
	Save(sess *session.Session)
}

type Create struct {
	log      *slog.Logger
	saver    SessionSaver
	deck     []domain.Card
	shuffler *domain.Shuffler
	game     config.Game
}

func NewCreate(
	log *slog.Logger,
	saver SessionSaver,
	deck []domain.Card,
	shuffler *domain.Shuffler,
	game config.Game) *Create {
	return &Create{
		log:      log,
		saver:    saver,
		deck:     deck,
		shuffler: shuffler,
		game:     game,
	}
}

func (c *Create) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.create.New"

		log := c.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		startingBalance := converter.ConvertAmountFloatToDecimal(c.game.StartingBalance)

		sess := session.New(uuid.New(), startingBalance, c.deck, c.shuffler)

		c.saver.Save(sess)

		log.Info("session created",
			slog.String("session_uuid", sess.ID().String()))

		render.JSON(w, r, Response{
			Response:    resp.OK(),
			Session:     model.SessionFromState(sess.Snapshot()),
			Chips:       model.ChipsFromDenominations(c.game.ChipDenominations),
			Multipliers: model.MultiplierTable(),
		})
	}
}
