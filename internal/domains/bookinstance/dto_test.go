package bookinstance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validInstanceForm() Form {
	return Form{
		Book:    primitive.NewObjectID().Hex(),
		Imprint: "Gollancz, 2011",
		Status:  "Available",
	}
}

func TestInstanceFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		want    []string
	}{
		{name: "valid", mutate: func(f *Form) {}, want: nil},
		{
			name:   "missing book",
			mutate: func(f *Form) { f.Book = "" },
			want:   []string{"Book must be specified"},
		},
		{
			name:   "book not an identity",
			mutate: func(f *Form) { f.Book = "zzz" },
			want:   []string{"Invalid book"},
		},
		{
			name:   "missing imprint",
			mutate: func(f *Form) { f.Imprint = "" },
			want:   []string{"Imprint must be specified"},
		},
		{
			name:   "unknown status",
			mutate: func(f *Form) { f.Status = "Lost" },
			want:   []string{"Invalid status"},
		},
		{
			name:   "empty status allowed",
			mutate: func(f *Form) { f.Status = "" },
			want:   nil,
		},
		{
			name:   "bad due date",
			mutate: func(f *Form) { f.DueBack = "12/31/2020" },
			want:   []string{"Invalid date"},
		},
		{
			name:   "valid due date",
			mutate: func(f *Form) { f.DueBack = "2020-12-31" },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validInstanceForm()
			tt.mutate(&f)

			got := f.Validate()
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInstanceFormToEntity_Defaults(t *testing.T) {
	f := validInstanceForm()
	f.Status = ""

	inst, err := f.ToEntity(primitive.NilObjectID)
	require.NoError(t, err)

	assert.Equal(t, StatusMaintenance, inst.Status)
	assert.True(t, inst.DueBack.IsZero())
}

func TestInstanceFormToEntity_ParsesDueBack(t *testing.T) {
	f := validInstanceForm()
	f.DueBack = "2020-10-06"

	inst, err := f.ToEntity(primitive.NilObjectID)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, time.October, 6, 0, 0, 0, 0, time.UTC), inst.DueBack)
}

func TestInstanceFormRoundTrip(t *testing.T) {
	orig := Form{
		Book:    primitive.NewObjectID().Hex(),
		Imprint: "Tor, 1999",
		Status:  "Loaned",
		DueBack: "2021-03-15",
	}

	inst, err := orig.ToEntity(primitive.NewObjectID())
	require.NoError(t, err)

	assert.Equal(t, orig, FormFromEntity(inst))
}
