package testutils

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/store"
)

// FakeScoreStore is an in-memory store.KnowledgeScoreStore keyed by
// (user, topic). Safe for concurrent use.
type FakeScoreStore struct {
	mu     sync.Mutex
	scores map[scoreKey]*domain.KnowledgeScore

	// CreateErr, GetErr and UpdateErr, when set, are returned by the
	// corresponding methods to simulate store failures.
	CreateErr error
	GetErr    error
	UpdateErr error
}

type scoreKey struct {
	userID string
	topic  domain.QuestionType
}

// NewFakeScoreStore creates an empty score store fake.
func NewFakeScoreStore() *FakeScoreStore {
	return &FakeScoreStore{scores: make(map[scoreKey]*domain.KnowledgeScore)}
}

var _ store.KnowledgeScoreStore = (*FakeScoreStore)(nil)

func (f *FakeScoreStore) Create(_ context.Context, score *domain.KnowledgeScore) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := scoreKey{score.UserID, score.Topic}
	if _, ok := f.scores[key]; ok {
		return store.ErrScoreExists
	}
	copied := *score
	f.scores[key] = &copied
	return nil
}

func (f *FakeScoreStore) Get(_ context.Context, userID string, topic domain.QuestionType) (*domain.KnowledgeScore, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	score, ok := f.scores[scoreKey{userID, topic}]
	if !ok {
		return nil, store.ErrScoreNotFound
	}
	copied := *score
	return &copied, nil
}

func (f *FakeScoreStore) GetForUpdate(ctx context.Context, userID string, topic domain.QuestionType) (*domain.KnowledgeScore, error) {
	return f.Get(ctx, userID, topic)
}

func (f *FakeScoreStore) Update(_ context.Context, score *domain.KnowledgeScore) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := scoreKey{score.UserID, score.Topic}
	if _, ok := f.scores[key]; !ok {
		return store.ErrScoreNotFound
	}
	copied := *score
	f.scores[key] = &copied
	return nil
}

func (f *FakeScoreStore) ListByUser(_ context.Context, userID string) ([]*domain.KnowledgeScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.KnowledgeScore
	// Fixed topic order keeps test assertions deterministic.
	for _, topic := range domain.QuestionTypes {
		if score, ok := f.scores[scoreKey{userID, topic}]; ok {
			copied := *score
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *FakeScoreStore) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.scores {
		if key.userID == userID {
			delete(f.scores, key)
		}
	}
	return nil
}

// WithTx returns the fake itself; transactions are a no-op in memory.
func (f *FakeScoreStore) WithTx(_ *sql.Tx) store.KnowledgeScoreStore { return f }

// FakeAttemptStore is an in-memory store.QuestionAttemptStore. Attempts are
// kept in insertion order; ListRecentByUser returns them newest first.
type FakeAttemptStore struct {
	mu       sync.Mutex
	attempts []*domain.QuestionAttempt

	CreateErr error
}

// NewFakeAttemptStore creates an empty attempt store fake.
func NewFakeAttemptStore() *FakeAttemptStore {
	return &FakeAttemptStore{}
}

var _ store.QuestionAttemptStore = (*FakeAttemptStore)(nil)

func (f *FakeAttemptStore) Create(_ context.Context, attempt *domain.QuestionAttempt) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *attempt
	f.attempts = append(f.attempts, &copied)
	return nil
}

func (f *FakeAttemptStore) ListRecentByUser(_ context.Context, userID string, limit int) ([]*domain.QuestionAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.QuestionAttempt
	for i := len(f.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if f.attempts[i].UserID == userID {
			copied := *f.attempts[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *FakeAttemptStore) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.attempts[:0]
	for _, a := range f.attempts {
		if a.UserID != userID {
			kept = append(kept, a)
		}
	}
	f.attempts = kept
	return nil
}

// Len returns the number of stored attempts across all users.
func (f *FakeAttemptStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attempts)
}

// WithTx returns the fake itself; transactions are a no-op in memory.
func (f *FakeAttemptStore) WithTx(_ *sql.Tx) store.QuestionAttemptStore { return f }
