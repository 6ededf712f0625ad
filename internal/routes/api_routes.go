package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gusttavohenn/finandash-fullstack/internal/handlers"
)

// RegisterAPIRoutes registers every authenticated API route.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		transactions := apiGroup.Group("/transactions")
		{
			transactions.GET("", handlers.ListTransactionsHandler)
			transactions.POST("", handlers.CreateTransactionHandler)
			transactions.PUT("/:id", handlers.UpdateTransactionHandler)
			transactions.DELETE("/:id", handlers.DeleteTransactionHandler)
			transactions.DELETE("", handlers.ClearTransactionsHandler)
		}

		// Lives outside the /transactions group so the static segment does
		// not collide with the :id wildcard.
		apiGroup.GET("/export/transactions", handlers.ExportTransactionsHandler)

		budgets := apiGroup.Group("/budgets")
		{
			budgets.GET("", handlers.ListBudgetsHandler)
			budgets.POST("", handlers.UpsertBudgetHandler)
		}

		recurring := apiGroup.Group("/recurring")
		{
			recurring.GET("", handlers.ListRecurringHandler)
			recurring.POST("", handlers.CreateRecurringHandler)
			recurring.DELETE("/:id", handlers.DeleteRecurringHandler)
			recurring.POST("/generate", handlers.GenerateRecurringHandler)
		}

		reminders := apiGroup.Group("/reminders")
		{
			reminders.GET("", handlers.ListRemindersHandler)
			reminders.POST("", handlers.CreateReminderHandler)
			reminders.PATCH("/:id", handlers.UpdateReminderPaidHandler)
			reminders.DELETE("/:id", handlers.DeleteReminderHandler)
		}

		apiGroup.GET("/dashboard", handlers.GetDashboardHandler)

		profile := apiGroup.Group("/profile")
		{
			profile.GET("", handlers.GetProfileHandler)
			profile.PUT("", handlers.UpdateProfileHandler)
		}
	}
}
