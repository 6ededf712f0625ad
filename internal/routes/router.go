package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/internal/middleware"
)

// SetupRoutes wires up all application routes: the public auth endpoints
// first, then everything behind the JWT middleware.
func SetupRoutes(r *gin.Engine) {
	RegisterAuthRoutes(r)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
