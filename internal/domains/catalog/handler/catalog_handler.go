package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/domains/catalog/service"
	"locallibrary/internal/shared/render"
)

type CatalogHandler struct {
	service  service.Service
	renderer render.Renderer
}

func NewCatalogHandler(svc service.Service, r render.Renderer) *CatalogHandler {
	return &CatalogHandler{service: svc, renderer: r}
}

// Index - GET /catalog
func (h *CatalogHandler) Index(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, http.StatusInternalServerError, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "index.tmpl", gin.H{
		"Title": "Local Library Home",
		"Data":  sum,
	})
}
