package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"sofia-assistant/internal/model"
)

const (
	defaultCapacity    = 1000
	defaultTTL         = 30 * time.Minute
	defaultMaxMessages = 20
)

// Store keeps per-user conversation history in memory. Sessions expire after
// a TTL of inactivity and the least recently used sessions are evicted under
// capacity pressure, so an abandoned dialog cannot leak memory.
type Store struct {
	mu          sync.Mutex
	cache       *expirable.LRU[string, []model.ConversationMessage]
	maxMessages int
}

// Config controls session retention.
type Config struct {
	Capacity    int           // max concurrent sessions
	TTL         time.Duration // session idle lifetime
	MaxMessages int           // per-session history bound
}

// New creates a session store. Zero config fields fall back to defaults.
func New(cfg Config) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = defaultMaxMessages
	}
	return &Store{
		cache:       expirable.NewLRU[string, []model.ConversationMessage](cfg.Capacity, nil, cfg.TTL),
		maxMessages: cfg.MaxMessages,
	}
}

// Append records one conversation turn for the user and returns the stored
// message. History is trimmed to the configured bound, oldest first.
func (s *Store) Append(userID, role, content string) model.ConversationMessage {
	msg := model.ConversationMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.cache.Get(userID)
	history = append(history, msg)
	if len(history) > s.maxMessages {
		history = history[len(history)-s.maxMessages:]
	}
	s.cache.Add(userID, history)

	return msg
}

// History returns a copy of the user's conversation history, oldest first.
func (s *Store) History(userID string) []model.ConversationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.cache.Get(userID)
	if !ok {
		return nil
	}
	out := make([]model.ConversationMessage, len(history))
	copy(out, history)
	return out
}

// Clear drops the user's session.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(userID)
}
