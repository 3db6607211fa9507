package memcache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/store"
)

func TestQuestionCacheLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewQuestionCache()

	question := &domain.Question{ID: "q-1", Type: domain.QuestionHandRanking}
	require.NoError(t, cache.Put(ctx, question))
	assert.Equal(t, 1, cache.Len())

	got, err := cache.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, question, got)

	require.NoError(t, cache.Delete(ctx, "q-1"))
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Get(ctx, "q-1")
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

func TestQuestionCacheDeleteAbsent(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewQuestionCache().Delete(context.Background(), "missing"))
}

func TestQuestionCachePutOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewQuestionCache()

	require.NoError(t, cache.Put(ctx, &domain.Question{ID: "q-1", Prompt: "old"}))
	require.NoError(t, cache.Put(ctx, &domain.Question{ID: "q-1", Prompt: "new"}))

	got, err := cache.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Prompt)
	assert.Equal(t, 1, cache.Len())
}

func TestQuestionCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewQuestionCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = cache.Put(ctx, &domain.Question{ID: id})
			_, _ = cache.Get(ctx, id)
			_ = cache.Delete(ctx, id)
		}(string(rune('a' + i)))
	}
	wg.Wait()

	assert.Equal(t, 0, cache.Len())
}
