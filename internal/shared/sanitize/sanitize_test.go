package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "The Name of the Wind", Clean("  The Name of the Wind  "))
}

func TestClean_StripsMarkup(t *testing.T) {
	assert.Equal(t, "", Clean("<script>alert(1)</script>"))
	assert.Equal(t, "bold", Clean("<b>bold</b>"))
}

func TestCleanAll_NilInput(t *testing.T) {
	got := CleanAll(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCleanAll_EachElement(t *testing.T) {
	got := CleanAll([]string{" a ", "<i>b</i>"})

	assert.Equal(t, []string{"a", "b"}, got)
}
