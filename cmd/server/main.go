package main

import (
	"fmt"
	"log"

	"gstdesk/internal/config"
	"gstdesk/internal/email/noop"
	"gstdesk/internal/email/ses"
	"gstdesk/internal/handler"
	"gstdesk/internal/port"
	"gstdesk/internal/repository/postgres"
	"gstdesk/internal/router"
	"gstdesk/internal/service"
	s3storage "gstdesk/internal/storage/s3"

	_ "gstdesk/docs"
)

// @title GSTDesk API
// @version 1.0
// @description GST-aware commercial document engine: invoices, quotations, sales orders, purchase bills, goods receipts, and credit notes.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	documentSvc := service.NewDocumentService(docRepo, itemRepo, tenantRepo)
	itemSvc := service.NewItemService(itemRepo)
	attachmentSvc := service.NewAttachmentService(fileRepo, docRepo, s3Client, cfg.S3)
	dispatchSvc := service.NewDispatchService(docRepo, tenantRepo, sender)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	documentH := handler.NewDocumentHandler(documentSvc, dispatchSvc)
	itemH := handler.NewItemHandler(itemSvc)
	attachmentH := handler.NewAttachmentHandler(attachmentSvc)
	exportH := handler.NewExportHandler(documentSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, documentH, itemH, attachmentH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
