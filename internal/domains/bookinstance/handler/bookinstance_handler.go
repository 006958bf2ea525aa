package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"locallibrary/internal/domains/bookinstance"
	"locallibrary/internal/domains/bookinstance/service"
	"locallibrary/internal/shared/render"
)

type BookInstanceHandler struct {
	service  service.Service
	renderer render.Renderer
}

func NewBookInstanceHandler(svc service.Service, r render.Renderer) *BookInstanceHandler {
	return &BookInstanceHandler{service: svc, renderer: r}
}

// List - GET /catalog/bookinstances
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_list.tmpl", gin.H{
		"Title":     "Book Instance List",
		"Instances": instances,
	})
}

// Detail - GET /catalog/bookinstance/:id
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, bookinstance.ErrInstanceNotFound)
		return
	}

	inst, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_detail.tmpl", gin.H{
		"Title":    "Copy: " + inst.Book.Title,
		"Instance": inst,
	})
}

// CreateGet - GET /catalog/bookinstance/create
func (h *BookInstanceHandler) CreateGet(c *gin.Context) {
	fd, err := h.service.FormData(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_form.tmpl", gin.H{
		"Title":    "Create BookInstance",
		"Books":    fd.Books,
		"Statuses": bookinstance.Statuses(),
		"Form":     bookinstance.Form{},
	})
}

// CreatePost - POST /catalog/bookinstance/create
func (h *BookInstanceHandler) CreatePost(c *gin.Context) {
	_ = c.Request.ParseForm()
	form := bookinstance.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderFormAgain(c, "Create BookInstance", form, msgs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateGet - GET /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdateGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, bookinstance.ErrInstanceNotFound)
		return
	}

	inst, fd, err := h.service.UpdateFormData(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_form.tmpl", gin.H{
		"Title":    "Update Book Instance",
		"Books":    fd.Books,
		"Statuses": bookinstance.Statuses(),
		"Form":     bookinstance.FormFromEntity(inst),
	})
}

// UpdatePost - POST /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdatePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.renderer.Error(c, http.StatusNotFound, bookinstance.ErrInstanceNotFound)
		return
	}

	_ = c.Request.ParseForm()
	form := bookinstance.FormFromRequest(c.Request.PostForm)

	if msgs := form.Validate(); len(msgs) > 0 {
		h.renderFormAgain(c, "Update Book Instance", form, msgs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

func (h *BookInstanceHandler) renderFormAgain(c *gin.Context, title string, form bookinstance.Form, msgs []string) {
	fd, err := h.service.FormData(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_form.tmpl", gin.H{
		"Title":    title,
		"Books":    fd.Books,
		"Statuses": bookinstance.Statuses(),
		"Form":     form,
		"Errors":   msgs,
	})
}

// DeleteGet - GET /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) DeleteGet(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	view, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}
	if view == nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	h.renderer.HTML(c, http.StatusOK, "bookinstance_delete.tmpl", gin.H{
		"Title":    "Delete Book Instance",
		"Instance": view,
	})
}

// DeletePost - POST /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) DeletePost(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.PostForm("bookinstanceID"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderer.Error(c, bookinstance.ToHTTPStatus(err), err)
		return
	}
	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}
