package admin

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/storage"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

const (
	// sessionTTL bounds operator sessions whose tokens carry no expiry claim.
	sessionTTL = 24 * time.Hour
	// sessionCleanupInterval controls how often expired sessions are purged.
	sessionCleanupInterval = 30 * time.Minute
)

// operatorSession binds a backend token to the operator it belongs to.
//
// Token and user are committed together at creation; there is no state where
// one is present without the other.
type operatorSession struct {
	id        string
	token     string
	user      superclip.User
	createdAt time.Time
	expiresAt time.Time
}

// sessionStore keeps operator sessions in memory with a persistent tier so
// sessions survive restarts. Subscribers observe create/delete transitions.
type sessionStore struct {
	mu          sync.Mutex
	sessions    map[string]operatorSession
	persist     storage.SessionStore
	ttl         time.Duration
	now         func() time.Time
	lastCleanup time.Time
	subscribers []func()
}

func newSessionStore(persist storage.SessionStore) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]operatorSession),
		persist:  persist,
		ttl:      sessionTTL,
		now:      time.Now,
	}
}

// Subscribe registers fn to run after every session create or delete.
func (s *sessionStore) Subscribe(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Create commits a new session for the given token and user atomically.
func (s *sessionStore) Create(ctx context.Context, token string, user superclip.User) (operatorSession, error) {
	if s == nil {
		return operatorSession{}, errors.New("session store is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return operatorSession{}, errors.New("session token is required")
	}

	now := s.now()
	session := operatorSession{
		id:        uuid.NewString(),
		token:     token,
		user:      user,
		createdAt: now,
		expiresAt: now.Add(s.ttl),
	}
	if exp, ok := tokenExpiry(token); ok && exp.Before(session.expiresAt) {
		session.expiresAt = exp
	}

	s.mu.Lock()
	s.cleanupLocked(now)
	s.sessions[session.id] = session
	s.mu.Unlock()

	if s.persist != nil {
		record := storage.SessionRecord{
			ID:        session.id,
			Token:     session.token,
			UserID:    session.user.ID,
			UserEmail: session.user.Email,
			UserName:  session.user.Name,
			CreatedAt: session.createdAt,
			ExpiresAt: session.expiresAt,
		}
		if err := s.persist.PutSession(ctx, record); err != nil {
			log.Printf("admin persist session: %v", err)
		}
	}

	s.notify()
	return session, nil
}

// Get returns the session for id, falling back to the persistent tier after a
// restart. Expired sessions are purged from both tiers and reported as absent.
func (s *sessionStore) Get(ctx context.Context, id string) (operatorSession, bool) {
	if s == nil {
		return operatorSession{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return operatorSession{}, false
	}

	now := s.now()
	s.mu.Lock()
	s.cleanupLocked(now)
	session, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok && s.persist != nil {
		record, err := s.persist.GetSession(ctx, id)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Printf("admin load session: %v", err)
			}
			return operatorSession{}, false
		}
		session = operatorSession{
			id:        record.ID,
			token:     record.Token,
			user:      superclip.User{ID: record.UserID, Email: record.UserEmail, Name: record.UserName},
			createdAt: record.CreatedAt,
			expiresAt: record.ExpiresAt,
		}
		s.mu.Lock()
		s.sessions[session.id] = session
		s.mu.Unlock()
		ok = true
	}
	if !ok {
		return operatorSession{}, false
	}

	if !session.expiresAt.IsZero() && now.After(session.expiresAt) {
		s.Delete(ctx, id)
		return operatorSession{}, false
	}
	return session, true
}

// Delete removes a session from both tiers. Absent sessions are a no-op.
func (s *sessionStore) Delete(ctx context.Context, id string) {
	if s == nil {
		return
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.DeleteSession(ctx, id); err != nil {
			log.Printf("admin delete session: %v", err)
		}
	}
	s.notify()
}

// DeleteByToken removes every session bound to a rejected backend token.
func (s *sessionStore) DeleteByToken(ctx context.Context, token string) {
	if s == nil {
		return
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	s.mu.Lock()
	for id, session := range s.sessions {
		if session.token == token {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.DeleteSessionsByToken(ctx, token); err != nil {
			log.Printf("admin delete sessions by token: %v", err)
		}
	}
	s.notify()
}

func (s *sessionStore) cleanupLocked(now time.Time) {
	if now.Sub(s.lastCleanup) < sessionCleanupInterval {
		return
	}
	for id, session := range s.sessions {
		if !session.expiresAt.IsZero() && now.After(session.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.lastCleanup = now
	if s.persist != nil {
		if err := s.persist.DeleteExpiredSessions(context.Background(), now); err != nil {
			log.Printf("admin sweep expired sessions: %v", err)
		}
	}
}

func (s *sessionStore) notify() {
	s.mu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}

// tokenExpiry reads the exp claim from a JWT without verifying the signature.
// Verification is the backend's job; the claim only tightens the local TTL.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
