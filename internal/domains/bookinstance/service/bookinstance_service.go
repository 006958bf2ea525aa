package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	"locallibrary/internal/shared/utils"
)

type instanceService struct {
	instances instanceRepo.Repository
	books     bookRepo.Repository
	now       func() time.Time
}

func NewService(instances instanceRepo.Repository, books bookRepo.Repository) Service {
	return &instanceService{
		instances: instances,
		books:     books,
		now:       time.Now,
	}
}

func (s *instanceService) List(ctx context.Context) ([]bookinstance.WithBook, error) {
	return s.instances.GetAllWithBooks(ctx)
}

func (s *instanceService) Detail(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error) {
	return s.instances.GetByIDWithBook(ctx, id)
}

func (s *instanceService) FormData(ctx context.Context) (*FormData, error) {
	books, err := s.books.GetTitles(ctx)
	if err != nil {
		return nil, err
	}
	utils.SortByKey(books, func(b book.Book) string { return b.Title })
	return &FormData{Books: books}, nil
}

func (s *instanceService) UpdateFormData(ctx context.Context, id primitive.ObjectID) (*bookinstance.BookInstance, *FormData, error) {
	var (
		inst *bookinstance.BookInstance
		fd   *FormData
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inst, err = s.instances.GetByID(ctx, id)
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

	return inst, fd, nil
}

func (s *instanceService) Create(ctx context.Context, f bookinstance.Form) (*bookinstance.BookInstance, error) {
	inst, err := f.ToEntity(primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	s.applyDueBackDefault(inst)
	return s.instances.Create(ctx, inst)
}

func (s *instanceService) Update(ctx context.Context, id primitive.ObjectID, f bookinstance.Form) (*bookinstance.BookInstance, error) {
	// Reusing the original identity is required, or the store would
	// allocate a new one.
	inst, err := f.ToEntity(id)
	if err != nil {
		return nil, err
	}
	s.applyDueBackDefault(inst)
	if err := s.instances.Replace(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// applyDueBackDefault fills the schema default when the form omitted the
// due date.
func (s *instanceService) applyDueBackDefault(inst *bookinstance.BookInstance) {
	if inst.DueBack.IsZero() {
		inst.DueBack = s.now()
	}
}

func (s *instanceService) DeleteView(ctx context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error) {
	inst, err := s.instances.GetByIDWithBook(ctx, id)
	if errors.Is(err, bookinstance.ErrInstanceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *instanceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.instances.Delete(ctx, id)
}
