package book

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
	"locallibrary/internal/domains/genre"
)

// Book is a catalog book document. Author and genres are stored as
// references and resolved with explicit joins at read time.
type Book struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title    string               `bson:"title" json:"title"`
	AuthorID primitive.ObjectID   `bson:"author" json:"author"`
	Summary  string               `bson:"summary" json:"summary"`
	ISBN     string               `bson:"isbn" json:"isbn"`
	GenreIDs []primitive.ObjectID `bson:"genre" json:"genre"`
}

// URL is the book's canonical catalog path.
func (b Book) URL() string {
	return "/catalog/book/" + b.ID.Hex()
}

// HasGenre reports whether the book references the given genre.
func (b Book) HasGenre(id primitive.ObjectID) bool {
	for _, g := range b.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// WithAuthor is a book with its author reference resolved, the shape the
// book list renders.
type WithAuthor struct {
	Book
	Author author.Author
}

// Detail is a fully resolved book: author and genre references replaced
// by their documents.
type Detail struct {
	Book
	Author author.Author
	Genres []genre.Genre
}
