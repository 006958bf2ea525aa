package author

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/shared/dates"
)

// Author is a catalog author document. Lifespan, display name and URL are
// computed from the stored fields, never persisted.
type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	FamilyName  string             `bson:"family_name" json:"family_name"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time         `bson:"date_of_death,omitempty" json:"date_of_death,omitempty"`
}

// Name is the canonical display form: "family_name, first_name".
func (a Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders "<birth> - <death>" with empty segments for absent dates.
func (a Author) Lifespan() string {
	s := ""
	if a.DateOfBirth != nil {
		s = dates.Medium(*a.DateOfBirth)
	}
	s += " - "
	if a.DateOfDeath != nil {
		s += dates.Medium(*a.DateOfDeath)
	}
	return s
}

// URL is the author's canonical catalog path.
func (a Author) URL() string {
	return "/catalog/author/" + a.ID.Hex()
}

// DateOfBirthISO is the yyyy-mm-dd form value, empty when unset.
func (a Author) DateOfBirthISO() string {
	if a.DateOfBirth == nil {
		return ""
	}
	return dates.ISO(*a.DateOfBirth)
}

// DateOfDeathISO is the yyyy-mm-dd form value, empty when unset.
func (a Author) DateOfDeathISO() string {
	if a.DateOfDeath == nil {
		return ""
	}
	return dates.ISO(*a.DateOfDeath)
}
