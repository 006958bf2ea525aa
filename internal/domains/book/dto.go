package book

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/shared/forms"
	"locallibrary/internal/shared/sanitize"
)

// Form carries the raw (sanitized) book form fields. Author and genre stay
// as hex identity strings until validation passes.
type Form struct {
	Title   string   `json:"title"`
	Author  string   `json:"author"`
	Summary string   `json:"summary"`
	ISBN    string   `json:"isbn"`
	Genre   []string `json:"genre"`
}

// FormFromRequest builds the sanitized form from POST values. The genre
// field is normalized from whatever shape it arrived in (absent, single
// value, list) into one canonical slice before validation.
func FormFromRequest(v url.Values) Form {
	return Form{
		Title:   sanitize.Clean(v.Get("title")),
		Author:  sanitize.Clean(v.Get("author")),
		Summary: sanitize.Clean(v.Get("summary")),
		ISBN:    sanitize.Clean(v.Get("isbn")),
		Genre:   forms.NormalizeList(v["genre"]),
	}
}

// Validate returns the ordered list of validation messages, empty on success.
func (f Form) Validate() []string {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("Title must not be empty."),
		),
		validation.Field(&f.Author,
			validation.Required.Error("Author must not be empty."),
			is.MongoID.Error("Invalid author"),
		),
		validation.Field(&f.Summary,
			validation.Required.Error("Summary must not be empty."),
		),
		validation.Field(&f.ISBN,
			validation.Required.Error("ISBN must not be empty"),
		),
	)
	return forms.Messages(err, "title", "author", "summary", "isbn")
}

// HasGenre reports whether the submitted form references the given genre;
// the form templates use it to re-check selected options.
func (f Form) HasGenre(id primitive.ObjectID) bool {
	hex := id.Hex()
	for _, g := range f.Genre {
		if g == hex {
			return true
		}
	}
	return false
}

// ToEntity converts a validated form into a Book. Pass the original id on
// update so the store keeps the existing identity.
func (f Form) ToEntity(id primitive.ObjectID) (*Book, error) {
	authorID, err := primitive.ObjectIDFromHex(f.Author)
	if err != nil {
		return nil, err
	}

	genreIDs := make([]primitive.ObjectID, 0, len(f.Genre))
	for _, g := range f.Genre {
		gid, err := primitive.ObjectIDFromHex(g)
		if err != nil {
			return nil, err
		}
		genreIDs = append(genreIDs, gid)
	}

	return &Book{
		ID:       id,
		Title:    f.Title,
		AuthorID: authorID,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		GenreIDs: genreIDs,
	}, nil
}

// FormFromEntity prefills the form for the update page.
func FormFromEntity(b *Book) Form {
	genres := make([]string, 0, len(b.GenreIDs))
	for _, g := range b.GenreIDs {
		genres = append(genres, g.Hex())
	}
	return Form{
		Title:   b.Title,
		Author:  b.AuthorID.Hex(),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genre:   genres,
	}
}
