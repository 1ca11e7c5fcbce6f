package router

import (
	"database/sql"

	"delivery_backend/internal/handlers"
	"delivery_backend/internal/middleware"
	"delivery_backend/internal/repositories"
	"delivery_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	noticeRepo := repositories.NewNoticeRepository(db)
	qnaRepo := repositories.NewQnaRepository(db)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	storeService := services.NewStoreService(storeRepo, db)
	menuService := services.NewMenuService(menuRepo, storeRepo, db)
	orderService := services.NewOrderService(orderRepo, menuRepo, storeRepo, db)
	noticeService := services.NewNoticeService(noticeRepo, db)
	qnaService := services.NewQnaService(qnaRepo, storeRepo, db)
	reportService := services.NewReportService(orderRepo, storeRepo, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	storeHandler := handlers.NewStoreHandler(storeService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	qnaHandler := handlers.NewQnaHandler(qnaService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Public routes: registration, login, store browsing, notices.
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)
	SetupPublicStoreRoutes(apiV1, storeHandler, menuHandler)
	SetupPublicNoticeRoutes(apiV1, noticeHandler)

	// Authenticated routes.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupStoreRoutes(authenticated, storeHandler, menuHandler)
		SetupMenuRoutes(authenticated, menuHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupNoticeRoutes(authenticated, noticeHandler)
		SetupQnaRoutes(authenticated, qnaHandler)
	}
}
