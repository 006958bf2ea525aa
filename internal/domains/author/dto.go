package author

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/shared/dates"
	"locallibrary/internal/shared/forms"
	"locallibrary/internal/shared/sanitize"
)

// Form carries the raw (sanitized) author form fields. Dates stay strings
// until validation has confirmed they parse.
type Form struct {
	FirstName   string `json:"first_name"`
	FamilyName  string `json:"family_name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
}

// FormFromRequest builds the form from POST values, trimming and
// sanitizing every field before validation.
func FormFromRequest(v url.Values) Form {
	return Form{
		FirstName:   sanitize.Clean(v.Get("first_name")),
		FamilyName:  sanitize.Clean(v.Get("family_name")),
		DateOfBirth: sanitize.Clean(v.Get("date_of_birth")),
		DateOfDeath: sanitize.Clean(v.Get("date_of_death")),
	}
}

// Validate returns the ordered list of validation messages, empty on success.
func (f Form) Validate() []string {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name must be specified."),
			validation.Length(1, 100).Error("First name must be at most 100 characters."),
		),
		validation.Field(&f.FamilyName,
			validation.Required.Error("Family name must be specified."),
			validation.Length(1, 100).Error("Family name must be at most 100 characters."),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(dates.ISOLayout).Error("Invalid date of birth"),
		),
		validation.Field(&f.DateOfDeath,
			validation.Date(dates.ISOLayout).Error("Invalid date of death"),
		),
	)
	return forms.Messages(err, "first_name", "family_name", "date_of_birth", "date_of_death")
}

// ToEntity converts a validated form into an Author. Pass the original id
// on update so the store keeps the existing identity; primitive.NilObjectID
// lets the repository assign a fresh one on create.
func (f Form) ToEntity(id primitive.ObjectID) (*Author, error) {
	a := &Author{
		ID:         id,
		FirstName:  f.FirstName,
		FamilyName: f.FamilyName,
	}
	if f.DateOfBirth != "" {
		t, err := dates.ParseISO(f.DateOfBirth)
		if err != nil {
			return nil, err
		}
		a.DateOfBirth = &t
	}
	if f.DateOfDeath != "" {
		t, err := dates.ParseISO(f.DateOfDeath)
		if err != nil {
			return nil, err
		}
		a.DateOfDeath = &t
	}
	return a, nil
}

// FormFromEntity prefills the form for the update page.
func FormFromEntity(a *Author) Form {
	return Form{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirthISO(),
		DateOfDeath: a.DateOfDeathISO(),
	}
}
