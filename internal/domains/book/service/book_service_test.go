package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
	authorRepo "locallibrary/internal/domains/author/repository"
	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance"
	instanceRepo "locallibrary/internal/domains/bookinstance/repository"
	"locallibrary/internal/domains/genre"
	genreRepo "locallibrary/internal/domains/genre/repository"
)

type fakeBookRepo struct {
	bookRepo.Repository
	byID     map[primitive.ObjectID]book.Book
	authors  map[primitive.ObjectID]author.Author
	genres   map[primitive.ObjectID]genre.Genre
	deleted  []primitive.ObjectID
	replaced []book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		byID:    map[primitive.ObjectID]book.Book{},
		authors: map[primitive.ObjectID]author.Author{},
		genres:  map[primitive.ObjectID]genre.Genre{},
	}
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.byID[b.ID] = *b
	return b, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id primitive.ObjectID) (*book.Book, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (f *fakeBookRepo) GetDetail(_ context.Context, id primitive.ObjectID) (*book.Detail, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}

	d := &book.Detail{Book: b, Author: f.authors[b.AuthorID]}
	for _, gid := range b.GenreIDs {
		if g, ok := f.genres[gid]; ok {
			d.Genres = append(d.Genres, g)
		}
	}
	return d, nil
}

func (f *fakeBookRepo) GetAllWithAuthors(_ context.Context) ([]book.WithAuthor, error) {
	out := make([]book.WithAuthor, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, book.WithAuthor{Book: b, Author: f.authors[b.AuthorID]})
	}
	return out, nil
}

func (f *fakeBookRepo) Replace(_ context.Context, b *book.Book) error {
	if _, ok := f.byID[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	f.byID[b.ID] = *b
	f.replaced = append(f.replaced, *b)
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAuthorRepo struct {
	authorRepo.Repository
	all []author.Author
}

func (f *fakeAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	out := make([]author.Author, len(f.all))
	copy(out, f.all)
	return out, nil
}

type fakeGenreRepo struct {
	genreRepo.Repository
	all []genre.Genre
}

func (f *fakeGenreRepo) GetAll(_ context.Context) ([]genre.Genre, error) {
	return f.all, nil
}

type fakeInstanceRepo struct {
	instanceRepo.Repository
	byBook map[primitive.ObjectID][]bookinstance.BookInstance
}

func (f *fakeInstanceRepo) FindByBook(_ context.Context, bookID primitive.ObjectID) ([]bookinstance.BookInstance, error) {
	return f.byBook[bookID], nil
}

func newTestService() (Service, *fakeBookRepo, *fakeInstanceRepo) {
	books := newFakeBookRepo()
	instances := &fakeInstanceRepo{byBook: map[primitive.ObjectID][]bookinstance.BookInstance{}}
	svc := NewService(books, &fakeAuthorRepo{}, &fakeGenreRepo{}, instances)
	return svc, books, instances
}

func TestBookCreate_RedirectTargetCarriesIdentity(t *testing.T) {
	svc, books, _ := newTestService()

	created, err := svc.Create(context.Background(), book.Form{
		Title:   "Dune",
		Author:  primitive.NewObjectID().Hex(),
		Summary: "Spice and sand.",
		ISBN:    "9780441172719",
	})
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "/catalog/book/"+created.ID.Hex(), created.URL())
	assert.Contains(t, books.byID, created.ID)
}

func TestBookList_SortedByTitle(t *testing.T) {
	svc, books, _ := newTestService()
	for _, title := range []string{"zebra", "Apple", "mango"} {
		b := book.Book{ID: primitive.NewObjectID(), Title: title}
		books.byID[b.ID] = b
	}

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "Apple", got[0].Title)
	assert.Equal(t, "mango", got[1].Title)
	assert.Equal(t, "zebra", got[2].Title)
}

func TestBookDetail(t *testing.T) {
	svc, books, instances := newTestService()

	a := author.Author{ID: primitive.NewObjectID(), FirstName: "Frank", FamilyName: "Herbert"}
	g := genre.Genre{ID: primitive.NewObjectID(), Name: "Science Fiction"}
	b := book.Book{
		ID:       primitive.NewObjectID(),
		Title:    "Dune",
		AuthorID: a.ID,
		GenreIDs: []primitive.ObjectID{g.ID},
	}
	books.byID[b.ID] = b
	books.authors[a.ID] = a
	books.genres[g.ID] = g
	instances.byBook[b.ID] = []bookinstance.BookInstance{
		{ID: primitive.NewObjectID(), BookID: b.ID, Status: bookinstance.StatusAvailable},
	}

	view, err := svc.Detail(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dune", view.Book.Title)
	assert.Equal(t, "Herbert, Frank", view.Book.Author.Name())
	assert.Equal(t, 1, view.GenreCount)
	require.Len(t, view.Instances, 1)
}

func TestBookDetail_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Detail(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookUpdate_KeepsIdentity(t *testing.T) {
	svc, books, _ := newTestService()

	b := book.Book{ID: primitive.NewObjectID(), Title: "Dne", AuthorID: primitive.NewObjectID()}
	books.byID[b.ID] = b

	updated, err := svc.Update(context.Background(), b.ID, book.Form{
		Title:   "Dune",
		Author:  b.AuthorID.Hex(),
		Summary: "Spice and sand.",
		ISBN:    "9780441172719",
	})
	require.NoError(t, err)

	assert.Equal(t, b.ID, updated.ID)
	assert.Equal(t, "Dune", books.byID[b.ID].Title)
	assert.Len(t, books.byID, 1)
}

func TestBookDelete_BlockedByCopies(t *testing.T) {
	svc, books, instances := newTestService()

	b := book.Book{ID: primitive.NewObjectID(), Title: "Dune"}
	books.byID[b.ID] = b
	instances.byBook[b.ID] = []bookinstance.BookInstance{{ID: primitive.NewObjectID(), BookID: b.ID}}

	err := svc.Delete(context.Background(), b.ID)

	assert.ErrorIs(t, err, book.ErrBookHasInstances)
	assert.Empty(t, books.deleted)
	assert.Contains(t, books.byID, b.ID)
}

func TestBookDelete_NoCopies(t *testing.T) {
	svc, books, _ := newTestService()

	b := book.Book{ID: primitive.NewObjectID(), Title: "Dune"}
	books.byID[b.ID] = b

	require.NoError(t, svc.Delete(context.Background(), b.ID))
	assert.Equal(t, []primitive.ObjectID{b.ID}, books.deleted)
}

func TestBookDeleteView_MissingBookIsNotAnError(t *testing.T) {
	svc, _, _ := newTestService()

	view, err := svc.DeleteView(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	assert.Nil(t, view.Book)
	assert.Empty(t, view.Instances)
}

func TestBookFormData_AuthorsSortedByFamilyName(t *testing.T) {
	books := newFakeBookRepo()
	authors := &fakeAuthorRepo{all: []author.Author{
		{ID: primitive.NewObjectID(), FamilyName: "Rothfuss"},
		{ID: primitive.NewObjectID(), FamilyName: "Asimov"},
	}}
	svc := NewService(books, authors, &fakeGenreRepo{}, &fakeInstanceRepo{})

	fd, err := svc.FormData(context.Background())
	require.NoError(t, err)

	require.Len(t, fd.Authors, 2)
	assert.Equal(t, "Asimov", fd.Authors[0].FamilyName)
	assert.Equal(t, "Rothfuss", fd.Authors[1].FamilyName)
}
