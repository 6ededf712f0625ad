package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Gusttavohenn/finandash-fullstack/config"
	"github.com/Gusttavohenn/finandash-fullstack/internal/middleware"
	"github.com/Gusttavohenn/finandash-fullstack/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on the environment")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	config.LoadJWTKey()
	config.ConnectDB()
	config.ConnectRedis()

	r := gin.Default()
	r.Use(middleware.RequestID())
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	slog.Info("server listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
