package main

import (
	"net/http"
	"os"

	"jekyll-cms/pkg/config"
	"jekyll-cms/pkg/handlers"
	"jekyll-cms/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize config and logging
	config.Init()
	logger.Init()

	r := gin.Default()

	// Session Setup
	store := cookie.NewStore([]byte(os.Getenv("SESSION_SECRET")))
	r.Use(sessions.Sessions("mysession", store))

	// Static Files & Templates
	r.LoadHTMLGlob("templates/*")
	r.Static(config.PreviewURL, config.SitePath)
	r.Static("/static", "./static") // Serve static assets (css/js)

	// --- Auth Routes ---
	r.GET("/login", handlers.LoginPage)
	r.GET("/login/github", handlers.GithubLogin)
	r.GET("/auth/callback", handlers.AuthCallback)
	r.GET("/logout", handlers.Logout)

	// --- Main App (Authorized) ---
	authorized := r.Group("/")
	authorized.Use(handlers.AuthRequired)
	{
		authorized.GET("/", func(c *gin.Context) { c.HTML(http.StatusOK, "index.html", nil) })
		authorized.GET("/ws/reload", handlers.LiveReload)

		api := authorized.Group("/api")
		{
			api.POST("/build", handlers.HandleBuild)
			api.GET("/documents", handlers.ListDocuments)
			api.GET("/document", handlers.GetDocument)
			api.POST("/document", handlers.SaveDocument)
			api.POST("/create", handlers.CreateDraft)
			api.POST("/publish", handlers.PublishDraft)
			api.POST("/unpublish", handlers.UnpublishPost)
			api.GET("/lint", handlers.LintDocument)
			api.GET("/lint/site", handlers.LintSite)
			api.POST("/diff", handlers.GetDiff)
			api.GET("/config", handlers.GetSiteConfig)
			api.POST("/sync", handlers.HandleSync)
			api.POST("/ship", handlers.HandleShip)
			api.GET("/media", handlers.ListMedia)
			api.POST("/media", handlers.UploadMedia)
			api.POST("/media/delete", handlers.DeleteMedia)
			api.GET("/media/raw", handlers.ServeMediaRaw)
		}
	}

	logger.Sugar.Infow("jekyll-cms listening", "addr", ":8080")
	r.Run(":8080")
}
