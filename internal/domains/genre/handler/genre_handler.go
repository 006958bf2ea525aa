package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/genre"
	"locallibrary/internal/domains/genre/service"
	"locallibrary/internal/shared/render"
)

type GenreHandler struct {
	service  service.Service
	renderer render.Renderer
}

func NewGenreHandler(svc service.Service, r render.Renderer) *GenreHandler {
	return &GenreHandler{service: svc, renderer: r}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "genre_list.tmpl", gin.H{
		"Title":  "Genre List",
		"Genres": genres,
	})
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, genre.ErrGenreNotFound)
		return
	}

	view, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "genre_detail.tmpl", gin.H{
		"Title": "Genre Detail",
		"Genre": view.Genre,
		"Books": view.Books,
	})
}

// CreateGet - GET /catalog/genre/create
func (h *GenreHandler) CreateGet(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "genre_form.tmpl", gin.H{
		"Title": "Create Genre",
		"Form":  genre.Form{},
	})
}

// CreatePost - POST /catalog/genre/create
func (h *GenreHandler) CreatePost(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := genre.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderer.HTML(c, http.StatusOK, "genre_form.tmpl", gin.H{
			"Title":  "Create Genre",
			"Form":   form,
			"Errors": msgs,
		})
		return
	}

	created, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet - GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, genre.ErrGenreNotFound)
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "genre_form.tmpl", gin.H{
		"Title": "Update Genre",
		"Form":  genre.Form{Name: g.Name},
	})
}

// UpdatePost - POST /catalog/genre/:id/update
func (h *GenreHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, genre.ErrGenreNotFound)
		return
	}

	_ = c.Request.ParseForm()
	form := genre.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderer.HTML(c, http.StatusOK, "genre_form.tmpl", gin.H{
			"Title":  "Update Genre",
			"Form":   form,
			"Errors": msgs,
		})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteGet - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}
	if view.Genre == nil {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "genre_delete.tmpl", gin.H{
		"Title": "Delete Genre",
		"Genre": view.Genre,
		"Books": view.Books,
	})
}

// DeletePost - POST /catalog/genre/:id/delete
func (h *GenreHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.PostForm("genreid"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}

	if len(view.Books) > 0 {
		h.renderer.HTML(c, http.StatusOK, "genre_delete.tmpl", gin.H{
			"Title": "Delete Genre",
			"Genre": view.Genre,
			"Books": view.Books,
		})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderer.Error(c, genre.ToHTTPStatus(err), err)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/genres")
}
