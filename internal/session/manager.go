// Package session holds the transient per-user conversation state: the
// in-progress review submission, an admin reply draft, or a welcome-post
// edit. Exactly one flow is active per user; starting a new one overwrites
// whatever was there.
package session

import "sync"

type Step string

const (
	StepAwaitingRating  Step = "AWAITING_RATING"
	StepAwaitingText    Step = "AWAITING_TEXT"
	StepAwaitingMedia   Step = "AWAITING_MEDIA"
	StepAwaitingReply   Step = "AWAITING_REPLY"
	StepAwaitingWelcome Step = "AWAITING_WELCOME"
)

type State struct {
	Step Step

	// Author identity snapshot taken when the flow started. Later steps
	// verify the acting user still matches it.
	AuthorID int64
	Username string
	FullName string

	Rating      int
	Text        string
	PhotoFileID string

	// Admin reply sub-flow.
	ReviewID   int64
	ReturnPage int
}

type Manager struct {
	mu     sync.Mutex
	byUser map[int64]State
}

func NewManager() *Manager {
	return &Manager{byUser: make(map[int64]State)}
}

func (m *Manager) Get(userID int64) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.byUser[userID]
	return state, ok
}

func (m *Manager) Set(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[userID] = state
}

func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
}
