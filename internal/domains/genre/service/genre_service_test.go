package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/genre"
	genreRepo "locallibrary/internal/domains/genre/repository"
)

type fakeGenreRepo struct {
	genreRepo.Repository
	byID    map[primitive.ObjectID]genre.Genre
	deleted []primitive.ObjectID
}

func newFakeGenreRepo(genres ...genre.Genre) *fakeGenreRepo {
	f := &fakeGenreRepo{byID: map[primitive.ObjectID]genre.Genre{}}
	for _, g := range genres {
		f.byID[g.ID] = g
	}
	return f
}

func (f *fakeGenreRepo) Create(_ context.Context, g *genre.Genre) (*genre.Genre, error) {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	f.byID[g.ID] = *g
	return g, nil
}

func (f *fakeGenreRepo) GetByID(_ context.Context, id primitive.ObjectID) (*genre.Genre, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	return &g, nil
}

func (f *fakeGenreRepo) GetByName(_ context.Context, name string) (*genre.Genre, error) {
	for _, g := range f.byID {
		if strings.EqualFold(g.Name, name) {
			return &g, nil
		}
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) GetAll(_ context.Context) ([]genre.Genre, error) {
	out := make([]genre.Genre, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreRepo) Replace(_ context.Context, g *genre.Genre) error {
	if _, ok := f.byID[g.ID]; !ok {
		return genre.ErrGenreNotFound
	}
	f.byID[g.ID] = *g
	return nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookRepo struct {
	bookRepo.Repository
	byGenre map[primitive.ObjectID][]book.Book
}

func (f *fakeBookRepo) FindByGenre(_ context.Context, genreID primitive.ObjectID) ([]book.Book, error) {
	return f.byGenre[genreID], nil
}

func TestGenreList_SortedByName(t *testing.T) {
	svc := NewService(newFakeGenreRepo(
		genre.Genre{ID: primitive.NewObjectID(), Name: "Science Fiction"},
		genre.Genre{ID: primitive.NewObjectID(), Name: "fantasy"},
		genre.Genre{ID: primitive.NewObjectID(), Name: "Poetry"},
	), &fakeBookRepo{})

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "fantasy", got[0].Name)
	assert.Equal(t, "Poetry", got[1].Name)
	assert.Equal(t, "Science Fiction", got[2].Name)
}

func TestGenreCreate_ReusesExistingName(t *testing.T) {
	existing := genre.Genre{ID: primitive.NewObjectID(), Name: "Fantasy"}
	repo := newFakeGenreRepo(existing)
	svc := NewService(repo, &fakeBookRepo{})

	got, err := svc.Create(context.Background(), genre.Form{Name: "fantasy"})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Fantasy", got.Name)
	assert.Len(t, repo.byID, 1)
}

func TestGenreCreate_NewName(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewService(repo, &fakeBookRepo{})

	got, err := svc.Create(context.Background(), genre.Form{Name: "Poetry"})
	require.NoError(t, err)

	assert.False(t, got.ID.IsZero())
	assert.Len(t, repo.byID, 1)
}

func TestGenreDetail(t *testing.T) {
	g := genre.Genre{ID: primitive.NewObjectID(), Name: "Fantasy"}
	books := &fakeBookRepo{byGenre: map[primitive.ObjectID][]book.Book{
		g.ID: {{Title: "The Name of the Wind"}},
	}}
	svc := NewService(newFakeGenreRepo(g), books)

	view, err := svc.Detail(context.Background(), g.ID)
	require.NoError(t, err)

	assert.Equal(t, g, view.Genre)
	require.Len(t, view.Books, 1)
}

func TestGenreDetail_NotFound(t *testing.T) {
	svc := NewService(newFakeGenreRepo(), &fakeBookRepo{})

	_, err := svc.Detail(context.Background(), primitive.NewObjectID())

	assert.ErrorIs(t, err, genre.ErrGenreNotFound)
}

func TestGenreDelete_BlockedByBooks(t *testing.T) {
	g := genre.Genre{ID: primitive.NewObjectID(), Name: "Fantasy"}
	repo := newFakeGenreRepo(g)
	books := &fakeBookRepo{byGenre: map[primitive.ObjectID][]book.Book{
		g.ID: {{Title: "The Name of the Wind"}},
	}}
	svc := NewService(repo, books)

	err := svc.Delete(context.Background(), g.ID)

	assert.ErrorIs(t, err, genre.ErrGenreHasBooks)
	assert.Empty(t, repo.deleted)
}

func TestGenreDeleteView_MissingGenreIsNotAnError(t *testing.T) {
	svc := NewService(newFakeGenreRepo(), &fakeBookRepo{})

	view, err := svc.DeleteView(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	assert.Nil(t, view.Genre)
}

func TestGenreUpdate_KeepsIdentity(t *testing.T) {
	g := genre.Genre{ID: primitive.NewObjectID(), Name: "Fantsy"}
	repo := newFakeGenreRepo(g)
	svc := NewService(repo, &fakeBookRepo{})

	updated, err := svc.Update(context.Background(), g.ID, genre.Form{Name: "Fantasy"})
	require.NoError(t, err)

	assert.Equal(t, g.ID, updated.ID)
	assert.Equal(t, "Fantasy", repo.byID[g.ID].Name)
}
