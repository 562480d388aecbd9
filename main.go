package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartsalary/backend/config"
	"smartsalary/backend/database"
	"smartsalary/backend/logger"
	"smartsalary/backend/routes"
	"smartsalary/backend/store"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.Env == "development", cfg.LogLevel); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg.DatabaseURL)
	database.EnsureSchema()

	st, err := store.NewClient(context.Background(), cfg.FirestoreProjectID, cfg.CredentialsFile)
	if err != nil {
		logger.Get().Fatal("firestore connect error", zap.Error(err))
	}
	defer st.Close()

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, st)

	logger.Get().Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("server error", zap.Error(err))
	}
}
