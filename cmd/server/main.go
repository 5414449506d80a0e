package main

import (
	"log"
	"time"

	"clinic-cashbook-backend/internal/config"
	"clinic-cashbook-backend/internal/models"
	"clinic-cashbook-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	// API decimals go out as plain JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	db := config.InitDB()

	db.AutoMigrate(
		&models.LedgerTransaction{},
		&models.RecordedBalance{},
		&models.BalanceAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	r.Run(":8080")
}
