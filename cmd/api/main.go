package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kipkemoi/tillprint-api/internal/application/service"
	"github.com/kipkemoi/tillprint-api/internal/config"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/handler"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/routes"
	"github.com/kipkemoi/tillprint-api/pkg/printer"
	"github.com/kipkemoi/tillprint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize thermal printer transport
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.Target)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	receiptService := service.NewReceiptService(thermalPrinter, cfg)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(cfg.Station, jwtManager),
		Receipt: handler.NewReceiptHandler(receiptService),
		Printer: handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Printer: type=%s target=%q width=%d", cfg.Printer.Type, cfg.Printer.Target, cfg.Printer.Width)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
