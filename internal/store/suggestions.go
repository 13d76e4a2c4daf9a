package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ldi/tasktalk/pkg/models"
)

// SuggestionBuffer provides thread-safe transient storage for the task
// suggestions produced by a meeting breakdown, keyed by conversation context.
// Each context holds at most one live buffer: Set replaces whatever was
// there before.
type SuggestionBuffer struct {
	mu      sync.RWMutex
	pending map[string][]models.Suggestion
}

func NewSuggestionBuffer() *SuggestionBuffer {
	return &SuggestionBuffer{
		pending: make(map[string][]models.Suggestion),
	}
}

// NewContextID mints a fresh conversation context id.
func NewContextID() string {
	return uuid.New().String()
}

// Set stores suggestions for a context, replacing any previous buffer.
func (b *SuggestionBuffer) Set(contextID string, items []models.Suggestion) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[contextID] = items
}

// Peek returns the buffered suggestions without consuming them.
func (b *SuggestionBuffer) Peek(contextID string) []models.Suggestion {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pending[contextID]
}

// TakeAll consumes and clears the buffer for a context.
func (b *SuggestionBuffer) TakeAll(contextID string) []models.Suggestion {
	b.mu.Lock()
	defer b.mu.Unlock()

	items, ok := b.pending[contextID]
	if !ok {
		return nil
	}
	delete(b.pending, contextID)
	return items
}

// Clear drops the buffer for a context, if any.
func (b *SuggestionBuffer) Clear(contextID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, contextID)
}
