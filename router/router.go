package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vaibhav01-bit/WordWave/handler"
	"github.com/Vaibhav01-bit/WordWave/middleware"
	"github.com/Vaibhav01-bit/WordWave/store"
)

func Setup(articles *store.ArticleStore, sessions *store.SessionStore) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.PrometheusMiddleware("wordwave-service"))

	articleHandler := handler.NewArticleHandler(articles, sessions)
	authHandler := handler.NewAuthHandler(sessions)

	// Health check endpoints
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)
	r.GET("/ready", healthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/wordwave-api")
	{
		api.GET("/articles", articleHandler.ListArticles)
		api.GET("/articles/all", authHandler.RequireAdmin, articleHandler.ListAllArticles)
		api.GET("/articles/:id", articleHandler.GetArticle)
		api.POST("/articles", articleHandler.SubmitArticle)
		api.POST("/articles/:id/like", articleHandler.LikeArticle)
		api.PATCH("/articles/:id/status", authHandler.RequireAdmin, articleHandler.UpdateStatus)
		api.DELETE("/articles/:id", authHandler.RequireAdmin, articleHandler.DeleteArticle)

		api.GET("/popular", articleHandler.WeeklyPopular)
		api.GET("/trending", articleHandler.GetTrending)
		api.POST("/trending/:id", authHandler.RequireAdmin, articleHandler.PromoteTrending)

		api.GET("/profile", articleHandler.Profile)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/session", authHandler.Session)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "wordwave-service"})
}
