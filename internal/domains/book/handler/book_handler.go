package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/book"
	"locallibrary/internal/domains/book/service"
	"locallibrary/internal/shared/render"
)

type BookHandler struct {
	service  service.Service
	renderer render.Renderer
}

func NewBookHandler(svc service.Service, r render.Renderer) *BookHandler {
	return &BookHandler{service: svc, renderer: r}
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_list.tmpl", gin.H{
		"Title": "Book List",
		"Books": books,
	})
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, book.ErrBookNotFound)
		return
	}

	view, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_detail.tmpl", gin.H{
		"Title":      view.Book.Title,
		"Book":       view.Book,
		"GenreCount": view.GenreCount,
		"Instances":  view.Instances,
	})
}

// CreateGet - GET /catalog/book/create
func (h *BookHandler) CreateGet(c *gin.Context) {
	fd, err := h.service.FormData(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_form.tmpl", gin.H{
		"Title":   "Create Book",
		"Authors": fd.Authors,
		"Genres":  fd.Genres,
		"Form":    book.Form{},
	})
}

// CreatePost - POST /catalog/book/create
func (h *BookHandler) CreatePost(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := book.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderFormAgain(c, "Create Book", form, msgs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet - GET /catalog/book/:id/update
func (h *BookHandler) UpdateGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, book.ErrBookNotFound)
		return
	}

	detail, fd, err := h.service.UpdateFormData(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_form.tmpl", gin.H{
		"Title":   "Update Book",
		"Authors": fd.Authors,
		"Genres":  fd.Genres,
		"Form":    book.FormFromEntity(&detail.Book),
	})
}

// UpdatePost - POST /catalog/book/:id/update
func (h *BookHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, book.ErrBookNotFound)
		return
	}

	_ = c.Request.ParseForm()
	form := book.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderFormAgain(c, "Update Book", form, msgs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// renderFormAgain re-renders the book form with the submitted values
// preserved and the validation messages attached.
func (h *BookHandler) renderFormAgain(c *gin.Context, title string, form book.Form, msgs []string) {
	fd, err := h.service.FormData(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_form.tmpl", gin.H{
		"Title":   title,
		"Authors": fd.Authors,
		"Genres":  fd.Genres,
		"Form":    form,
		"Errors":  msgs,
	})
}

// DeleteGet - GET /catalog/book/:id/delete
func (h *BookHandler) DeleteGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}
	if view.Book == nil {
		// Nothing left to confirm.
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "book_delete.tmpl", gin.H{
		"Title":     "Delete Book",
		"Book":      view.Book,
		"Instances": view.Instances,
	})
}

// DeletePost - POST /catalog/book/:id/delete
func (h *BookHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.PostForm("bookId"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}

	if len(view.Instances) > 0 {
		// Blocking copies exist: confirm again instead of deleting.
		h.renderer.HTML(c, http.StatusOK, "book_delete.tmpl", gin.H{
			"Title":     "Delete Book",
			"Book":      view.Book,
			"Instances": view.Instances,
		})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderer.Error(c, book.ToHTTPStatus(err), err)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/books")
}
