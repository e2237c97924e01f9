package storage

import "sync"

// PendingKind tells what the next plain-text message of a chat is expected to be.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingDeckText
	PendingFillAnswer
)

// Pending is the input a chat is waiting for.
type Pending struct {
	Kind      PendingKind
	Title     string // deck title for PendingDeckText
	SessionID int64  // quiz session for PendingFillAnswer
	Order     int    // question index for PendingFillAnswer
}

// QuizStorage provides in-memory conversation state: the last question message
// of each quiz session and the pending input of each chat.
type QuizStorage struct {
	mu         sync.RWMutex
	messageIDs map[int64]int
	pending    map[int64]Pending
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		messageIDs: make(map[int64]int),
		pending:    make(map[int64]Pending),
	}
}

// StoreMessageID remembers the message that shows the current question of a session.
func (s *QuizStorage) StoreMessageID(sessionID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageIDs[sessionID] = messageID
}

// GetMessageID returns the message that shows the current question of a session.
func (s *QuizStorage) GetMessageID(sessionID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.messageIDs[sessionID]
	return id, ok
}

// Delete forgets the session.
func (s *QuizStorage) Delete(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messageIDs, sessionID)
}

func (s *QuizStorage) SetPending(chatID int64, p Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Kind == PendingNone {
		delete(s.pending, chatID)
		return
	}
	s.pending[chatID] = p
}

func (s *QuizStorage) GetPending(chatID int64) Pending {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending[chatID]
}

func (s *QuizStorage) ClearPending(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, chatID)
}
