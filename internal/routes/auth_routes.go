package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/internal/handlers"
)

// RegisterAuthRoutes registers the public endpoints. These are the only
// routes that skip the token middleware.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/api/register", handlers.RegisterHandler)
	r.POST("/api/login", handlers.LoginHandler)
}
