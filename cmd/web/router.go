package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/shared/middleware"
	"locallibrary/internal/shared/render"
	"locallibrary/pkg/container"
)

// SetupRouter registers templates, static assets and every catalog
// route on a fresh gin engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// FuncMap must be registered before the templates are parsed.
	router.SetFuncMap(render.Helpers())
	router.LoadHTMLGlob(c.Config.App.TemplatesDir + "/*.tmpl")
	router.Static("/static", c.Config.App.StaticDir)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupBookRoutes(catalog, c)
		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		c.Renderer.Error(ctx, http.StatusNotFound, errors.New("page not found"))
	})

	return router
}

func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/books", c.BookHandler.List)

	book := catalog.Group("/book")
	{
		book.GET("/create", c.BookHandler.CreateGet)
		book.POST("/create", c.BookHandler.CreatePost)
		book.GET("/:id", c.BookHandler.Detail)
		book.GET("/:id/update", c.BookHandler.UpdateGet)
		book.POST("/:id/update", c.BookHandler.UpdatePost)
		book.GET("/:id/delete", c.BookHandler.DeleteGet)
		book.POST("/:id/delete", c.BookHandler.DeletePost)
	}
}

func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/authors", c.AuthorHandler.List)

	author := catalog.Group("/author")
	{
		author.GET("/create", c.AuthorHandler.CreateGet)
		author.POST("/create", c.AuthorHandler.CreatePost)
		author.GET("/:id", c.AuthorHandler.Detail)
		author.GET("/:id/update", c.AuthorHandler.UpdateGet)
		author.POST("/:id/update", c.AuthorHandler.UpdatePost)
		author.GET("/:id/delete", c.AuthorHandler.DeleteGet)
		author.POST("/:id/delete", c.AuthorHandler.DeletePost)
	}
}

func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/genres", c.GenreHandler.List)

	genre := catalog.Group("/genre")
	{
		genre.GET("/create", c.GenreHandler.CreateGet)
		genre.POST("/create", c.GenreHandler.CreatePost)
		genre.GET("/:id", c.GenreHandler.Detail)
		genre.GET("/:id/update", c.GenreHandler.UpdateGet)
		genre.POST("/:id/update", c.GenreHandler.UpdatePost)
		genre.GET("/:id/delete", c.GenreHandler.DeleteGet)
		genre.POST("/:id/delete", c.GenreHandler.DeletePost)
	}
}

func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/bookinstances", c.InstanceHandler.List)

	instance := catalog.Group("/bookinstance")
	{
		instance.GET("/create", c.InstanceHandler.CreateGet)
		instance.POST("/create", c.InstanceHandler.CreatePost)
		instance.GET("/:id", c.InstanceHandler.Detail)
		instance.GET("/:id/update", c.InstanceHandler.UpdateGet)
		instance.POST("/:id/update", c.InstanceHandler.UpdatePost)
		instance.GET("/:id/delete", c.InstanceHandler.DeleteGet)
		instance.POST("/:id/delete", c.InstanceHandler.DeletePost)
	}
}
