package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/author"
	"locallibrary/internal/domains/author/service"
	"locallibrary/internal/shared/render"
)

type AuthorHandler struct {
	service  service.Service
	renderer render.Renderer
}

func NewAuthorHandler(svc service.Service, r render.Renderer) *AuthorHandler {
	return &AuthorHandler{service: svc, renderer: r}
}

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "author_list.tmpl", gin.H{
		"Title":   "Author List",
		"Authors": authors,
	})
}

// Detail - GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, author.ErrAuthorNotFound)
		return
	}

	view, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "author_detail.tmpl", gin.H{
		"Title":  "Author Detail",
		"Author": view.Author,
		"Books":  view.Books,
	})
}

// CreateGet - GET /catalog/author/create
func (h *AuthorHandler) CreateGet(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "author_form.tmpl", gin.H{
		"Title": "Create Author",
		"Form":  author.Form{},
	})
}

// CreatePost - POST /catalog/author/create
func (h *AuthorHandler) CreatePost(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := author.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderer.HTML(c, http.StatusOK, "author_form.tmpl", gin.H{
			"Title":  "Create Author",
			"Form":   form,
			"Errors": msgs,
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet - GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, author.ErrAuthorNotFound)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "author_form.tmpl", gin.H{
		"Title": "Update Author",
		"Form":  author.FormFromEntity(a),
	})
}

// UpdatePost - POST /catalog/author/:id/update
func (h *AuthorHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, author.ErrAuthorNotFound)
		return
	}

	_ = c.Request.ParseForm()
	form := author.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderer.HTML(c, http.StatusOK, "author_form.tmpl", gin.H{
			"Title":  "Update Author",
			"Form":   form,
			"Errors": msgs,
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteGet - GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}
	if view.Author == nil {
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "author_delete.tmpl", gin.H{
		"Title":  "Delete Author",
		"Author": view.Author,
		"Books":  view.Books,
	})
}

// DeletePost - POST /catalog/author/:id/delete
func (h *AuthorHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.PostForm("authorid"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}

	if len(view.Books) > 0 {
		// Blocking books exist: confirm again instead of deleting.
		h.renderer.HTML(c, http.StatusOK, "author_delete.tmpl", gin.H{
			"Title":  "Delete Author",
			"Author": view.Author,
			"Books":  view.Books,
		})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderer.Error(c, author.ToHTTPStatus(err), err)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/authors")
}
