package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/forensicsite/internal/app/controllers"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/views"
	"github.com/yigit/forensicsite/internal/middleware"
	"github.com/yigit/forensicsite/internal/pkg/websocket"
)

// Controllers groups every controller the router needs
type Controllers struct {
	Auth    *controllers.AuthController
	Page    *controllers.PageController
	Edit    *controllers.EditController
	Section *controllers.SectionController
	Catalog *controllers.CatalogController
	Media   *controllers.MediaController
	Site    *controllers.SiteController
	Live    *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- HTML pages ---
	if c.Site != nil {
		router.GET("/", c.Site.Home)
		router.GET("/events", c.Site.Events)
		router.GET("/courses", c.Site.Courses)
		router.GET("/faculty", c.Site.Faculty)
		router.GET("/achievements", c.Site.Achievements)
		router.GET("/blog", c.Site.Blog)
		router.GET("/blog/:slug", c.Site.Post)
		router.StaticFS("/static", http.FS(views.Static()))
	}

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok", "time": time.Now().UTC()}))
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
	}

	// --- Public catalog routes (upstream API with empty fallbacks) ---
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/courses", c.Catalog.Courses)
		catalog.GET("/events", c.Catalog.Events)
		catalog.GET("/blog", c.Catalog.Posts)
		catalog.GET("/blog/:slug", c.Catalog.Post)
	}

	// --- Page routes ---
	pages := v1.Group("/pages")
	pages.Use(middleware.ValidatePathParams())
	{
		// Reading is public
		pages.GET("", c.Page.ListRealms)
		pages.GET("/:realm", c.Page.GetPage)
		pages.GET("/:realm/sections/:section", c.Page.GetSection)
		pages.GET("/:realm/items/:section", c.Section.ListItems)
		pages.GET("/:realm/categories", c.Section.Categories)
		pages.GET("/:realm/filter", c.Section.Filtered)
		if c.Live != nil {
			pages.GET("/:realm/live", authMiddleware.OptionalAuth(), c.Live.HandleConnection)
		}

		// Authenticated page routes
		editor := pages.Group("")
		editor.Use(authMiddleware.JWTAuth())
		{
			editor.POST("/:realm/edit", c.Edit.Begin)
			editor.POST("/:realm/reset", c.Page.Reset)
			editor.GET("/:realm/export", c.Page.Export)

			// Routes that act on the caller's edit session
			session := editor.Group("")
			session.Use(authMiddleware.RequireEditSession())
			{
				session.GET("/:realm/edit", c.Edit.Status)
				session.DELETE("/:realm/edit", c.Edit.Discard)
				session.POST("/:realm/save/request", c.Edit.RequestSave)
				session.POST("/:realm/save/cancel", c.Edit.CancelSave)
				session.POST("/:realm/save/confirm", c.Edit.ConfirmSave)

				session.PUT("/:realm", c.Page.Import)
				session.PUT("/:realm/sections/:section", c.Page.UpdateSection)

				session.POST("/:realm/items/:section", c.Section.AddItem)
				session.PATCH("/:realm/items/:section/:id", c.Section.UpdateItem)
				session.DELETE("/:realm/items/:section/:id", c.Section.DeleteItem)

				session.POST("/:realm/categories", c.Section.AddCategory)
				session.PUT("/:realm/categories/:name", c.Section.RenameCategory)
				session.DELETE("/:realm/categories/:name", c.Section.DeleteCategory)
			}
		}
	}

	// --- Media routes ---
	media := v1.Group("/media")
	media.Use(authMiddleware.JWTAuth())
	{
		media.POST("/images", c.Media.UploadImage)
		media.POST("/format", c.Media.Format)
	}
}
