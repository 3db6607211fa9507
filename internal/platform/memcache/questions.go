// Package memcache provides an in-process implementation of the question
// cache. It replaces what used to be module-level mutable state with an
// explicitly injected store whose lifecycle the caller owns.
package memcache

import (
	"context"
	"sync"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/store"
)

// QuestionCache is a mutex-guarded map keyed by question ID.
type QuestionCache struct {
	mu        sync.Mutex
	questions map[string]*domain.Question
}

// NewQuestionCache creates an empty question cache.
func NewQuestionCache() *QuestionCache {
	return &QuestionCache{questions: make(map[string]*domain.Question)}
}

var _ store.QuestionCache = (*QuestionCache)(nil)

// Put implements store.QuestionCache.Put.
func (c *QuestionCache) Put(_ context.Context, question *domain.Question) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions[question.ID] = question
	return nil
}

// Get implements store.QuestionCache.Get.
func (c *QuestionCache) Get(_ context.Context, questionID string) (*domain.Question, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	question, ok := c.questions[questionID]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	return question, nil
}

// Delete implements store.QuestionCache.Delete.
func (c *QuestionCache) Delete(_ context.Context, questionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.questions, questionID)
	return nil
}

// Len returns the number of cached questions. Used by tests and diagnostics.
func (c *QuestionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.questions)
}
