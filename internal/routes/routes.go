package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "clinic-cashbook-backend/internal/handlers"
	"clinic-cashbook-backend/internal/repository"
	service "clinic-cashbook-backend/internal/services/cashbook"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	ledgerRepo := repository.NewLedgerRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)

	cashbookService := service.NewCashbookService(ledgerRepo, balanceRepo)

	cashbookHandler := handler.NewCashbookHandler(cashbookService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Cash book routes
	cashbook := api.Group("/cashbook")
	cashbook.GET("/daily-report", cashbookHandler.GetDailyReport)
	cashbook.POST("/daily-balance", cashbookHandler.SaveDailyBalance)

	// Ledger transaction routes
	tx := cashbook.Group("/transactions")
	{
		tx.POST("", cashbookHandler.CreateTransaction)
		tx.GET("", cashbookHandler.ListTransactions)
	}
}
