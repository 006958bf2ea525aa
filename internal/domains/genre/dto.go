package genre

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/shared/forms"
	"locallibrary/internal/shared/sanitize"
)

type Form struct {
	Name string `json:"name"`
}

func FormFromRequest(v url.Values) Form {
	return Form{Name: sanitize.Clean(v.Get("name"))}
}

func (f Form) Validate() []string {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Genre name required"),
			validation.Length(3, 100).Error("Genre name must contain at least 3 characters"),
		),
	)
	return forms.Messages(err, "name")
}

func (f Form) ToEntity(id primitive.ObjectID) *Genre {
	return &Genre{ID: id, Name: f.Name}
}
