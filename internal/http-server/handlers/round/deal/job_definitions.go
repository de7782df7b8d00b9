package deal

import (
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/http-server/model"
	"github.com/louisfh66/card-roulette/internal/lib/converter"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/session"
	"golang.org/x/exp/slog"
)

// RevealStepJob flips the next card of a running reveal and pushes it to the
// session channel. A step scheduled before a reset carries a stale generation
// and does nothing.
type RevealStepJob struct {
	log       *slog.Logger
	publisher event.Publisher
	sess      *session.Session
	gen       uint64
}

func (j *RevealStepJob) Execute() {
	card, index, done, ok := j.sess.RevealNext(j.gen)
	if !ok {
		return
	}

	channel := event.SessionChannel(j.sess.ID())
	cardView := model.CardFromDomain(card)

	data := map[string]interface{}{
		"index": index,
		"card":  cardView,
		"done":  done,
	}

	if err := j.publisher.TriggerEvent(event.Message{
		Channel: channel,
		Event:   event.CardRevealed,
		Data:    data,
	}); err != nil {
		j.log.Error("failed to publish reveal event", sl.Err(err))
	}

	if !done {
		return
	}

	st := j.sess.Snapshot()

	completed := map[string]interface{}{
		"balance": converter.ConvertAmountDecimalToString(st.Balance),
	}

	if st.LastRound != nil {
		completed["uuid"] = st.LastRound.ID.String()
		completed["profit"] = converter.ConvertAmountDecimalToString(st.LastRound.Profit)
	}

	if err := j.publisher.TriggerEvent(event.Message{
		Channel: channel,
		Event:   event.RoundCompleted,
		Data:    completed,
	}); err != nil {
		j.log.Error("failed to publish round completed event", sl.Err(err))
	}
}
