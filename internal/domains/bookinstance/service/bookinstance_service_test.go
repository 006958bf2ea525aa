package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
)

type fakeInstanceRepo struct {
	instanceRepo.Repository
	byID    map[primitive.ObjectID]bookinstance.BookInstance
	books   map[primitive.ObjectID]book.Book
	deleted []primitive.ObjectID
}

func newFakeInstanceRepo() *fakeInstanceRepo {
	return &fakeInstanceRepo{
		byID:  map[primitive.ObjectID]bookinstance.BookInstance{},
		books: map[primitive.ObjectID]book.Book{},
	}
}

func (f *fakeInstanceRepo) Create(_ context.Context, i *bookinstance.BookInstance) (*bookinstance.BookInstance, error) {
	if i.ID.IsZero() {
		i.ID = primitive.NewObjectID()
	}
	f.byID[i.ID] = *i
	return i, nil
}

func (f *fakeInstanceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*bookinstance.BookInstance, error) {
	i, ok := f.byID[id]
	if !ok {
		return nil, bookinstance.ErrInstanceNotFound
	}
	return &i, nil
}

func (f *fakeInstanceRepo) GetByIDWithBook(_ context.Context, id primitive.ObjectID) (*bookinstance.WithBook, error) {
	i, ok := f.byID[id]
	if !ok {
		return nil, bookinstance.ErrInstanceNotFound
	}
	b, ok := f.books[i.BookID]
	if !ok {
		return nil, bookinstance.ErrInstanceNotFound
	}
	return &bookinstance.WithBook{BookInstance: i, Book: b}, nil
}

func (f *fakeInstanceRepo) GetAllWithBooks(_ context.Context) ([]bookinstance.WithBook, error) {
	out := make([]bookinstance.WithBook, 0, len(f.byID))
	for _, i := range f.byID {
		out = append(out, bookinstance.WithBook{BookInstance: i, Book: f.books[i.BookID]})
	}
	return out, nil
}

func (f *fakeInstanceRepo) Replace(_ context.Context, i *bookinstance.BookInstance) error {
	if _, ok := f.byID[i.ID]; !ok {
		return bookinstance.ErrInstanceNotFound
	}
	f.byID[i.ID] = *i
	return nil
}

func (f *fakeInstanceRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookRepo struct {
	bookRepo.Repository
	titles []book.Book
}

func (f *fakeBookRepo) GetTitles(_ context.Context) ([]book.Book, error) {
	out := make([]book.Book, len(f.titles))
	copy(out, f.titles)
	return out, nil
}

func validForm() bookinstance.Form {
	return bookinstance.Form{
		Book:    primitive.NewObjectID().Hex(),
		Imprint: "Gollancz, 2011",
		Status:  "Available",
	}
}

func TestInstanceCreate_DefaultsDueBackToNow(t *testing.T) {
	repo := newFakeInstanceRepo()
	svc := NewService(repo, &fakeBookRepo{})

	before := time.Now()
	created, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.WithinDuration(t, before, created.DueBack, 5*time.Second)
}

func TestInstanceCreate_KeepsSubmittedDueBack(t *testing.T) {
	repo := newFakeInstanceRepo()
	svc := NewService(repo, &fakeBookRepo{})

	f := validForm()
	f.DueBack = "2030-01-02"

	created, err := svc.Create(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC), created.DueBack)
}

func TestInstanceUpdate_KeepsIdentityAndDefaultsDueBack(t *testing.T) {
	repo := newFakeInstanceRepo()
	svc := NewService(repo, &fakeBookRepo{})

	i := bookinstance.BookInstance{
		ID:      primitive.NewObjectID(),
		BookID:  primitive.NewObjectID(),
		Imprint: "Tor, 1999",
		Status:  bookinstance.StatusLoaned,
	}
	repo.byID[i.ID] = i

	f := validForm()
	f.Book = i.BookID.Hex()

	updated, err := svc.Update(context.Background(), i.ID, f)
	require.NoError(t, err)

	assert.Equal(t, i.ID, updated.ID)
	assert.False(t, updated.DueBack.IsZero())
	assert.Len(t, repo.byID, 1)
}

func TestInstanceDetail_MissingCopy(t *testing.T) {
	svc := NewService(newFakeInstanceRepo(), &fakeBookRepo{})

	_, err := svc.Detail(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, bookinstance.ErrInstanceNotFound)
}

func TestInstanceDeleteView_MissingCopyIsNotAnError(t *testing.T) {
	svc := NewService(newFakeInstanceRepo(), &fakeBookRepo{})

	view, err := svc.DeleteView(context.Background(), primitive.NewObjectID())

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestInstanceDelete(t *testing.T) {
	repo := newFakeInstanceRepo()
	svc := NewService(repo, &fakeBookRepo{})

	i := bookinstance.BookInstance{ID: primitive.NewObjectID()}
	repo.byID[i.ID] = i

	require.NoError(t, svc.Delete(context.Background(), i.ID))
	assert.Equal(t, []primitive.ObjectID{i.ID}, repo.deleted)
}

func TestInstanceFormData_BooksSortedByTitle(t *testing.T) {
	books := &fakeBookRepo{titles: []book.Book{
		{ID: primitive.NewObjectID(), Title: "zebra"},
		{ID: primitive.NewObjectID(), Title: "Apple"},
	}}
	svc := NewService(newFakeInstanceRepo(), books)

	fd, err := svc.FormData(context.Background())
	require.NoError(t, err)

	require.Len(t, fd.Books, 2)
	assert.Equal(t, "Apple", fd.Books[0].Title)
	assert.Equal(t, "zebra", fd.Books[1].Title)
}
