package genre

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want []string
	}{
		{name: "valid", form: Form{Name: "Fantasy"}, want: nil},
		{name: "missing", form: Form{}, want: []string{"Genre name required"}},
		{name: "too short", form: Form{Name: "ab"}, want: []string{"Genre name must contain at least 3 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Validate()
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGenreFormFromRequest(t *testing.T) {
	f := FormFromRequest(url.Values{"name": {" <em>Poetry</em> "}})

	assert.Equal(t, "Poetry", f.Name)
}
