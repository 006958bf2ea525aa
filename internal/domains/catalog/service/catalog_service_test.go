package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorRepo "locallibrary/internal/domains/author/repository"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	genreRepo "locallibrary/internal/domains/genre/repository"
)

type countingBookRepo struct {
	bookRepo.Repository
	count int64
	err   error
}

func (f *countingBookRepo) Count(_ context.Context) (int64, error) {
	return f.count, f.err
}

type countingAuthorRepo struct {
	authorRepo.Repository
	count int64
}

func (f *countingAuthorRepo) Count(_ context.Context) (int64, error) {
	return f.count, nil
}

type countingGenreRepo struct {
	genreRepo.Repository
	count int64
}

func (f *countingGenreRepo) Count(_ context.Context) (int64, error) {
	return f.count, nil
}

type countingInstanceRepo struct {
	instanceRepo.Repository
	count     int64
	available int64
}

func (f *countingInstanceRepo) Count(_ context.Context) (int64, error) {
	return f.count, nil
}

func (f *countingInstanceRepo) CountByStatus(_ context.Context, status bookinstance.Status) (int64, error) {
	if status == bookinstance.StatusAvailable {
		return f.available, nil
	}
	return 0, nil
}

// memoryCache records cache traffic for assertions.
type memoryCache struct {
	data map[string][]byte
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.sets++
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func newCountingService(c *memoryCache) Service {
	books := &countingBookRepo{count: 5}
	authors := &countingAuthorRepo{count: 3}
	genres := &countingGenreRepo{count: 2}
	instances := &countingInstanceRepo{count: 7, available: 4}

	if c == nil {
		return NewService(books, authors, genres, instances, nil, 0)
	}
	return NewService(books, authors, genres, instances, c, time.Minute)
}

func TestSummary_FansOutAllCounts(t *testing.T) {
	svc := newCountingService(nil)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), sum.BookCount)
	assert.Equal(t, int64(7), sum.InstanceCount)
	assert.Equal(t, int64(4), sum.AvailableInstanceCount)
	assert.Equal(t, int64(3), sum.AuthorCount)
	assert.Equal(t, int64(2), sum.GenreCount)
}

func TestSummary_SingleFailureAborts(t *testing.T) {
	books := &countingBookRepo{err: errors.New("store down")}
	svc := NewService(books, &countingAuthorRepo{}, &countingGenreRepo{}, &countingInstanceRepo{}, nil, 0)

	_, err := svc.Summary(context.Background())

	assert.Error(t, err)
}

func TestSummary_WritesAndServesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newCountingService(cache)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Summary(context.Background())
	require.NoError(t, err)

	// Second read is served from the cache, not recounted.
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first, second)
}
