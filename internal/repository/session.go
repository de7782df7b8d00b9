package repository

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/louisfh66/card-roulette/internal/session"
	"github.com/patrickmn/go-cache"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps live sessions in an expiring in-memory cache.
// Every Save slides the expiration window, so a session stays alive as long
// as its player keeps acting on it.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	c := cache.New(ttl, cleanupInterval)

	c.OnEvicted(func(_ string, v interface{}) {
		if sess, ok := v.(*session.Session); ok {
			sess.StopReveals()
		}
	})

	return &SessionRepository{cache: c}
}

func (repo *SessionRepository) Save(sess *session.Session) {
	repo.cache.Set(sess.ID().String(), sess, cache.DefaultExpiration)
}

func (repo *SessionRepository) Find(id uuid.UUID) (*session.Session, error) {
	const op = "repository.session.Find"

	v, found := repo.cache.Get(id.String())
	if !found {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}

	sess, ok := v.(*session.Session)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected entry type %T", op, v)
	}

	return sess, nil
}

func (repo *SessionRepository) Delete(id uuid.UUID) {
	repo.cache.Delete(id.String())
}

func (repo *SessionRepository) Count() int {
	return repo.cache.ItemCount()
}
