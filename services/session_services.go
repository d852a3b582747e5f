package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"iconhive/apperrors"
	"iconhive/metrics"
	"iconhive/models"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SearchHistory keeps the most recent distinct search terms, newest first
type SearchHistory struct {
	terms []string
}

// Add moves term to the front, dropping an existing occurrence and the oldest entry past the limit.
// Blank terms are ignored.
func (h *SearchHistory) Add(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}

	terms := make([]string, 0, models.MaxSearchHistory)
	terms = append(terms, term)
	for _, existing := range h.terms {
		if existing == term {
			continue
		}
		if len(terms) == models.MaxSearchHistory {
			break
		}
		terms = append(terms, existing)
	}
	h.terms = terms
	return true
}

func (h *SearchHistory) Terms() []string {
	terms := make([]string, len(h.terms))
	copy(terms, h.terms)
	return terms
}

// SelectionSet holds the ids of the icons selected for export, in selection order
type SelectionSet struct {
	order []string
}

// Toggle selects id, or deselects it when already selected. It returns the new state.
func (s *SelectionSet) Toggle(id string) bool {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return false
		}
	}
	s.order = append(s.order, id)
	return true
}

func (s *SelectionSet) Has(id string) bool {
	for _, existing := range s.order {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *SelectionSet) Clear() {
	s.order = nil
}

func (s *SelectionSet) Len() int {
	return len(s.order)
}

func (s *SelectionSet) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Session is the in-memory state of one gallery client
type Session struct {
	ID string

	mu         sync.Mutex
	state      models.ViewState
	history    SearchHistory
	selection  SelectionSet
	apps       []models.EnrichedApp
	generation uint64
	cancel     context.CancelFunc
	// pending is the state of the latest run, adopted by Commit
	pending models.ViewState
}

func NewSession(id string) *Session {
	return &Session{ID: id, state: models.ViewState{Color: models.BucketAll}}
}

// Begin starts a new pipeline run for state. The previous in-flight run is cancelled,
// and its results will be refused by Commit.
func (s *Session) Begin(ctx context.Context, state models.ViewState) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	s.pending = state
	return runCtx, s.generation
}

// Commit stores apps as the display list, and the state that produced them, if generation
// is still the latest run. An empty result clears the selection.
func (s *Session) Commit(generation uint64, apps []models.EnrichedApp) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		metrics.StaleRunsDropped.Inc()
		return false
	}
	s.state = s.pending
	s.apps = apps
	if len(apps) == 0 {
		s.selection.Clear()
	}
	return true
}

// Finish releases the cancel function of generation when it is still the latest run
func (s *Session) Finish(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation == s.generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) cancelRun() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Displays reports whether imageURL is the artwork of an app in the display list
func (s *Session) Displays(imageURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.ArtworkURL100 != "" && app.ArtworkURL100 == imageURL {
			return true
		}
	}
	return false
}

// Submit validates a search submission and records it in the history.
// Blank terms are rejected before anything else happens.
func (s *Session) Submit(term string) (models.ViewState, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.ViewState{}, apperrors.ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Add(term)
	state := s.state
	state.Search = term
	return state, nil
}

// ClearSearch returns the current state without a search term
func (s *Session) ClearSearch() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.Search = ""
	return state
}

func (s *Session) State() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Apps() []models.EnrichedApp {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := make([]models.EnrichedApp, len(s.apps))
	copy(apps, s.apps)
	return apps
}

func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Terms()
}

func (s *Session) ToggleSelection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Toggle(id)
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

func (s *Session) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// SelectedApps returns the displayed apps that are selected, in selection order
func (s *Session) SelectedApps() []models.EnrichedApp {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]models.EnrichedApp, len(s.apps))
	for _, app := range s.apps {
		byID[appKey(app)] = app
	}
	selected := make([]models.EnrichedApp, 0, s.selection.Len())
	for _, id := range s.selection.IDs() {
		if app, ok := byID[id]; ok {
			selected = append(selected, app)
		}
	}
	return selected
}

const (
	// DefaultSessionLimit caps how many sessions are held at once
	DefaultSessionLimit = 10000
	// DefaultSessionTTL is how long an idle session is kept
	DefaultSessionTTL = 30 * time.Minute
)

// SessionStore keeps sessions in memory; they are lost on restart.
// Idle sessions expire after the TTL, and the least recently used one is evicted past the limit.
type SessionStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

func NewSessionStore(limit int, ttl time.Duration) *SessionStore {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(_ string, session *Session) {
		session.cancelRun()
	}
	return &SessionStore{sessions: expirable.NewLRU[string, *Session](limit, onEvict, ttl)}
}

// ValidSessionID reports whether id is a session id this server could have issued
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the session for id and refreshes its expiry. Unknown ids create a session;
// an empty or malformed id gets a fresh uuid instead of being adopted.
func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if !ValidSessionID(id) {
		id = uuid.NewString()
	}
	session, ok := st.sessions.Get(id)
	if !ok {
		session = NewSession(id)
	}
	st.sessions.Add(id, session)
	metrics.SessionsActive.Set(float64(st.sessions.Len()))
	return session
}

func (st *SessionStore) Len() int {
	return st.sessions.Len()
}

// Viewer runs the pipeline
type Viewer interface {
	View(ctx context.Context, state models.ViewState) ([]models.EnrichedApp, error)
}

// ErrSuperseded is returned by RunView when a newer run replaced this one
var ErrSuperseded = errors.New("pipeline run superseded by a newer request")

// RunView runs the pipeline for a session and commits the result, publishing run events.
// A run replaced by a newer one returns ErrSuperseded and leaves the display list alone.
func RunView(ctx context.Context, viewer Viewer, session *Session, state models.ViewState, publish func(models.RunEvent)) ([]models.EnrichedApp, error) {
	if publish == nil {
		publish = func(models.RunEvent) {}
	}

	runCtx, generation := session.Begin(ctx, state)
	defer session.Finish(generation)
	publish(models.RunEvent{SessionID: session.ID, Generation: generation, State: models.RunLoading})

	apps, err := viewer.View(runCtx, state)
	if err != nil {
		if runCtx.Err() != nil && ctx.Err() == nil {
			return nil, ErrSuperseded
		}
		publish(models.RunEvent{SessionID: session.ID, Generation: generation, State: models.RunFailed, Error: err.Error()})
		return nil, err
	}

	if !session.Commit(generation, apps) {
		return nil, ErrSuperseded
	}
	publish(models.RunEvent{SessionID: session.ID, Generation: generation, State: models.RunReady, Count: len(apps)})
	return apps, nil
}

func appKey(app models.EnrichedApp) string {
	return formatTrackID(app.TrackID)
}
