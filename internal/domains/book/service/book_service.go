package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/domains/author"
	authorRepo "locallibrary/internal/domains/author/repository"
	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	"locallibrary/internal/domains/genre"
	genreRepo "locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/shared/utils"
)

type bookService struct {
	books     bookRepo.Repository
	authors   authorRepo.Repository
	genres    genreRepo.Repository
	instances instanceRepo.Repository
}

func NewService(
	books bookRepo.Repository,
	authors authorRepo.Repository,
	genres genreRepo.Repository,
	instances instanceRepo.Repository,
) Service {
	return &bookService{
		books:     books,
		authors:   authors,
		genres:    genres,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.WithAuthor, error) {
	list, err := s.books.GetAllWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	utils.SortByKey(list, func(b book.WithAuthor) string { return b.Title })
	return list, nil
}

func (s *bookService) Detail(ctx context.Context, id primitive.ObjectID) (*DetailView, error) {
	var (
		detail    *book.Detail
		instances []bookinstance.BookInstance
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.books.GetDetail(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = s.instances.FindByBook(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DetailView{
		Book:       *detail,
		GenreCount: len(detail.Genres),
		Instances:  instances,
	}, nil
}

func (s *bookService) FormData(ctx context.Context) (*FormData, error) {
	var (
		authors []author.Author
		genres  []genre.Genre
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.authors.GetAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = s.genres.GetAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	utils.SortByKey(authors, func(a author.Author) string { return a.FamilyName })
	return &FormData{Authors: authors, Genres: genres}, nil
}

func (s *bookService) UpdateFormData(ctx context.Context, id primitive.ObjectID) (*book.Detail, *FormData, error) {
	var (
		detail *book.Detail
		fd     *FormData
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.books.GetDetail(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		fd, err = s.FormData(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return detail, fd, nil
}

func (s *bookService) Create(ctx context.Context, f book.Form) (*book.Book, error) {
	b, err := f.ToEntity(primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	return s.books.Create(ctx, b)
}

func (s *bookService) Update(ctx context.Context, id primitive.ObjectID, f book.Form) (*book.Book, error) {
	// Reusing the original identity is required, or the store would
	// allocate a new one.
	b, err := f.ToEntity(id)
	if err != nil {
		return nil, err
	}
	if err := s.books.Replace(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) DeleteView(ctx context.Context, id primitive.ObjectID) (*DeleteView, error) {
	var (
		target    *book.Book
		instances []bookinstance.BookInstance
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.books.GetByID(ctx, id)
		if errors.Is(err, book.ErrBookNotFound) {
			// The delete page treats a missing target as "nothing to
			// confirm", not as an error.
			return nil
		}
		target = b
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = s.instances.FindByBook(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DeleteView{Book: target, Instances: instances}, nil
}

func (s *bookService) Delete(ctx context.Context, id primitive.ObjectID) error {
	instances, err := s.instances.FindByBook(ctx, id)
	if err != nil {
		return err
	}
	if len(instances) > 0 {
		return book.ErrBookHasInstances
	}
	return s.books.Delete(ctx, id)
}
