package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sfaram/vidgrid/internal/app"
	"github.com/sfaram/vidgrid/internal/logger"
)

const sessionSweepInterval = 5 * time.Minute

// sessionEntry tracks one browser session's view-state container.
type sessionEntry struct {
	app      *app.App
	lastSeen time.Time
}

// SessionManager hands each browser session its own view-state container,
// keyed by a session cookie. Containers share the catalog client and the
// preference store; navigation and login state are per session.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	cookie   string
	ttl      time.Duration
	factory  func() *app.App
	stop     chan struct{}
	done     chan struct{}
}

// NewSessionManager creates a session manager. factory builds and
// initializes a fresh container for a new session.
func NewSessionManager(cookie string, ttl time.Duration, factory func() *app.App) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		cookie:   cookie,
		ttl:      ttl,
		factory:  factory,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// App returns the container for the request's session, creating a session
// (and setting the cookie) when none exists.
func (m *SessionManager) App(c *gin.Context) *app.App {
	id, err := c.Cookie(m.cookie)

	m.mu.Lock()
	if err == nil {
		if entry, ok := m.sessions[id]; ok {
			entry.lastSeen = time.Now()
			m.mu.Unlock()
			return entry.app
		}
	}

	id = uuid.NewString()
	entry := &sessionEntry{app: m.factory(), lastSeen: time.Now()}
	m.sessions[id] = entry
	m.mu.Unlock()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie, id, int(m.ttl.Seconds()), "/", "", false, true)

	logger.Log.Debug().Str("session_id", id).Msg("Session created")
	return entry.app
}

// Start launches the idle-session sweeper.
func (m *SessionManager) Start() {
	go m.sweep()
}

// Stop terminates the sweeper and waits for it to exit.
func (m *SessionManager) Stop() {
	close(m.stop)
	<-m.done
}

func (m *SessionManager) sweep() {
	defer close(m.done)

	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.expire(time.Now())
		}
	}
}

// expire drops sessions idle longer than the TTL.
func (m *SessionManager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > m.ttl {
			delete(m.sessions, id)
			logger.Log.Debug().Str("session_id", id).Msg("Session expired")
		}
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
