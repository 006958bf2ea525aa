package render

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

// Renderer produces a response body from a template name and a view model.
// Handlers depend on this interface rather than on gin's HTML machinery so
// tests can substitute a recording implementation.
type Renderer interface {
	HTML(c *gin.Context, status int, name string, data gin.H)
	Error(c *gin.Context, status int, err error)
}

// HTMLRenderer renders html/template pages through gin.
type HTMLRenderer struct {
	env string
}

func New(env string) *HTMLRenderer {
	return &HTMLRenderer{env: env}
}

func (r *HTMLRenderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// Error renders the shared error page. The full error detail is only
// exposed in development.
func (r *HTMLRenderer) Error(c *gin.Context, status int, err error) {
	data := gin.H{
		"Title":   "Error",
		"Status":  status,
		"Message": err.Error(),
	}
	if r.env == "development" {
		data["Detail"] = fmt.Sprintf("%+v", err)
	}
	c.HTML(status, "error.tmpl", data)
}

// Helpers returns the comparison helpers the page templates use.
func Helpers() template.FuncMap {
	return template.FuncMap{
		// strict equality
		"ifeq": func(a, b interface{}) bool { return a == b },
		// string-coerced equality; nil on either side compares unequal
		"ifeqstr": func(a, b interface{}) bool {
			if a == nil || b == nil {
				return false
			}
			return fmt.Sprint(a) == fmt.Sprint(b)
		},
		// strict inequality
		"ifne": func(a, b interface{}) bool { return a != b },
		// true when a < b-1; used to place separators between list items
		"iflower": func(a, b int) bool { return a < b-1 },
	}
}
