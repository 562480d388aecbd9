package routes

import (
	"github.com/gin-gonic/gin"

	"smartsalary/backend/config"
	"smartsalary/backend/controllers"
	"smartsalary/backend/middlewares"
	"smartsalary/backend/store"
)

func Register(r *gin.Engine, cfg config.Config, st *store.Client) {
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", controllers.Register(cfg))
		auth.POST("/login", controllers.Login(cfg))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("me", controllers.Me())

		// Monthly form: budget plan + health score
		priv.POST("months", controllers.SubmitMonth(st))
		priv.GET("months/:month", controllers.GetMonth(st))
		priv.GET("months/:month/stream", controllers.StreamMonth(st))

		// Transaction ledger
		priv.POST("transactions", controllers.CreateTransaction(st))
		priv.GET("transactions", controllers.ListTransactions(st))

		// AI roadmap (POST generates for the current month)
		priv.POST("roadmaps", controllers.GenerateRoadmap(cfg, st))
		priv.GET("roadmaps/:month", controllers.GetRoadmap(st))
		priv.POST("roadmaps/:month/toggle", controllers.ToggleTask(st))

		// Career coaching
		priv.PUT("career/profile", controllers.UpsertCareerProfile(st))
		priv.GET("career/profile", controllers.GetCareerProfile(st))
		priv.POST("career/insights", controllers.CareerInsights(cfg, st))

		// Statements (XLSX/CSV)
		priv.GET("statement/:month/export", controllers.ExportStatement(st))
		priv.POST("statement/import", controllers.ImportStatement(st))
	}
}
