package bookinstance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	"locallibrary/internal/shared/dates"
)

// Status is the loan state of a physical copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses lists every valid status, in form-select order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// BookInstance is a physical copy of a book.
type BookInstance struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID  primitive.ObjectID `bson:"book" json:"book"`
	Imprint string             `bson:"imprint" json:"imprint"`
	Status  Status             `bson:"status" json:"status"`
	DueBack time.Time          `bson:"due_back" json:"due_back"`
}

// URL is the copy's canonical catalog path.
func (i BookInstance) URL() string {
	return "/catalog/bookinstance/" + i.ID.Hex()
}

// DueBackFormatted renders the due date for display, e.g. "Oct 6, 2020".
func (i BookInstance) DueBackFormatted() string {
	return dates.Medium(i.DueBack)
}

// DueBackISO is the yyyy-mm-dd form value.
func (i BookInstance) DueBackISO() string {
	return dates.ISO(i.DueBack)
}

// WithBook is a copy with its book reference resolved.
type WithBook struct {
	BookInstance
	Book book.Book
}
