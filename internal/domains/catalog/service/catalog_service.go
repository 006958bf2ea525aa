package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	authorRepo "locallibrary/internal/domains/author/repository"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	genreRepo "locallibrary/internal/domains/genre/repository"
	"locallibrary/pkg/cache"
	"locallibrary/pkg/logger"
)

const summaryCacheKey = "catalog:summary"

// Summary is the home-page view model: five independent collection counts.
type Summary struct {
	BookCount              int64 `json:"book_count"`
	InstanceCount          int64 `json:"book_instance_count"`
	AvailableInstanceCount int64 `json:"book_instance_available_count"`
	AuthorCount            int64 `json:"author_count"`
	GenreCount             int64 `json:"genre_count"`
}

// Service produces the home-page summary.
type Service interface {
	// Summary runs the five counts concurrently and waits for all of
	// them; any single failure aborts the whole read.
	Summary(ctx context.Context) (*Summary, error)
}

type catalogService struct {
	books     bookRepo.Repository
	authors   authorRepo.Repository
	genres    genreRepo.Repository
	instances instanceRepo.Repository

	// optional; nil disables the summary cache
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewService(
	books bookRepo.Repository,
	authors authorRepo.Repository,
	genres genreRepo.Repository,
	instances instanceRepo.Repository,
	c cache.Cache,
	cacheTTL time.Duration,
) Service {
	return &catalogService{
		books:     books,
		authors:   authors,
		genres:    genres,
		instances: instances,
		cache:     c,
		cacheTTL:  cacheTTL,
	}
}

func (s *catalogService) Summary(ctx context.Context) (*Summary, error) {
	if s.cache != nil {
		var cached Summary
		found, err := s.cache.Get(ctx, summaryCacheKey, &cached)
		if err != nil {
			// Cache trouble must not take the page down.
			logger.Warn("catalog summary: cache read failed", err)
		} else if found {
			return &cached, nil
		}
	}

	var sum Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sum.BookCount, err = s.books.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sum.InstanceCount, err = s.instances.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sum.AvailableInstanceCount, err = s.instances.CountByStatus(ctx, bookinstance.StatusAvailable)
		return err
	})
	g.Go(func() error {
		var err error
		sum.AuthorCount, err = s.authors.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sum.GenreCount, err = s.genres.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summaryCacheKey, &sum, s.cacheTTL); err != nil {
			logger.Warn("catalog summary: cache write failed", err)
		}
	}
	return &sum, nil
}
