package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/metrics"
	"layers-storefront/internal/shell"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type entry struct {
	shell    *shell.Shell
	lastSeen time.Time
}

// Registry holds one shell per browsing session and evicts idle ones
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*entry
	store     catalog.Store
	idleTTL   time.Duration
	shellOpts []shell.Option
	now       func() time.Time
	logger    *zap.Logger
}

// NewRegistry creates an empty registry. Sessions idle for longer than
// idleTTL are removed by Sweep.
func NewRegistry(store catalog.Store, idleTTL time.Duration, logger *zap.Logger, opts ...shell.Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions:  make(map[string]*entry),
		store:     store,
		idleTTL:   idleTTL,
		shellOpts: append([]shell.Option{shell.WithLogger(logger)}, opts...),
		now:       time.Now,
		logger:    logger,
	}
}

// Create starts a new session at the Home view
func (r *Registry) Create() (string, *shell.Shell) {
	id := uuid.NewString()
	sh := shell.New(r.store, r.shellOpts...)

	r.mu.Lock()
	r.sessions[id] = &entry{shell: sh, lastSeen: r.now()}
	r.mu.Unlock()

	metrics.ActiveSessions.Inc()
	r.logger.Info("Session created", zap.String("session_id", id))
	return id, sh
}

// Get returns the shell for id and marks the session as active
func (r *Registry) Get(id string) (*shell.Shell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.shell, nil
}

// Delete ends a session and tears down its views
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.shell.Close()
	metrics.ActiveSessions.Dec()
	r.logger.Info("Session deleted", zap.String("session_id", id))
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes sessions idle since before now minus the idle TTL and
// returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idleTTL)

	var expired []*shell.Shell
	r.mu.Lock()
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.shell)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, sh := range expired {
		sh.Close()
	}
	if len(expired) > 0 {
		metrics.ActiveSessions.Sub(float64(len(expired)))
		r.logger.Info("Expired idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps on every tick of interval until ctx is done. A non-positive
// interval disables sweeping.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			r.Sweep(t)
		}
	}
}

// Close tears down every session
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range sessions {
		e.shell.Close()
	}
	metrics.ActiveSessions.Sub(float64(len(sessions)))
}
