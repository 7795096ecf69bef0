package memory

import (
	"sync"
	"time"

	"beauty-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ConversationSession is the in-memory state of one chat window: an append-only
// turn log. It lives for the session lifetime only.
type ConversationSession struct {
	Id        uuid.UUID
	CreatedAt time.Time

	mu    sync.RWMutex
	turns []entity.Turn
}

func (s *ConversationSession) Append(turn entity.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

// Turns returns a snapshot of the log in append order.
func (s *ConversationSession) Turns() []entity.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Create() *ConversationSession {
	session := &ConversationSession{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(sessionID uuid.UUID) (*ConversationSession, bool) {
	if x, found := r.cache.Get(sessionID.String()); found {
		// Touch so active conversations don't expire mid-chat.
		r.cache.Set(sessionID.String(), x, cache.DefaultExpiration)
		return x.(*ConversationSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID uuid.UUID) {
	r.cache.Delete(sessionID.String())
}
