package bookinstance

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/shared/dates"
	"locallibrary/internal/shared/forms"
	"locallibrary/internal/shared/sanitize"
)

// Form carries the raw (sanitized) copy form fields. The due date stays a
// string until validation has confirmed it parses as ISO-8601.
type Form struct {
	Book    string `json:"book"`
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

func FormFromRequest(v url.Values) Form {
	return Form{
		Book:    sanitize.Clean(v.Get("book")),
		Imprint: sanitize.Clean(v.Get("imprint")),
		Status:  sanitize.Clean(v.Get("status")),
		DueBack: sanitize.Clean(v.Get("due_back")),
	}
}

// Validate returns the ordered list of validation messages, empty on
// success. The due date is optional; when present it must be ISO-8601.
func (f Form) Validate() []string {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Book,
			validation.Required.Error("Book must be specified"),
			is.MongoID.Error("Invalid book"),
		),
		validation.Field(&f.Imprint,
			validation.Required.Error("Imprint must be specified"),
		),
		validation.Field(&f.Status,
			validation.In(
				StatusAvailable.String(),
				StatusMaintenance.String(),
				StatusLoaned.String(),
				StatusReserved.String(),
			).Error("Invalid status"),
		),
		validation.Field(&f.DueBack,
			validation.Date(dates.ISOLayout).Error("Invalid date"),
		),
	)
	return forms.Messages(err, "book", "imprint", "status", "due_back")
}

// ToEntity converts a validated form into a BookInstance. An absent due
// date is left as the zero time; the service applies the schema default.
// An absent status falls back to Maintenance, the schema default.
func (f Form) ToEntity(id primitive.ObjectID) (*BookInstance, error) {
	bookID, err := primitive.ObjectIDFromHex(f.Book)
	if err != nil {
		return nil, err
	}

	status := Status(f.Status)
	if f.Status == "" {
		status = StatusMaintenance
	}

	inst := &BookInstance{
		ID:      id,
		BookID:  bookID,
		Imprint: f.Imprint,
		Status:  status,
	}
	if f.DueBack != "" {
		t, err := dates.ParseISO(f.DueBack)
		if err != nil {
			return nil, err
		}
		inst.DueBack = t
	}
	return inst, nil
}

// FormFromEntity prefills the form for the update page.
func FormFromEntity(i *BookInstance) Form {
	return Form{
		Book:    i.BookID.Hex(),
		Imprint: i.Imprint,
		Status:  i.Status.String(),
		DueBack: i.DueBackISO(),
	}
}
