package router

import (
	"delivery_backend/internal/handlers"
	"delivery_backend/internal/middleware"
	"delivery_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the unauthenticated auth routes.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes sets up the auth routes that require a token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupPublicStoreRoutes sets up store browsing routes that need no token:
// listings, detail pages, live open/closed status and menus.
func SetupPublicStoreRoutes(apiGroup *gin.RouterGroup, storeHandler *handlers.StoreHandler, menuHandler *handlers.MenuHandler) {
	storeRoutes := apiGroup.Group("/stores")
	{
		storeRoutes.GET("", storeHandler.GetStores)
		storeRoutes.GET("/:id", storeHandler.GetStoreByID)
		storeRoutes.GET("/:id/status", storeHandler.GetStoreStatus)
		storeRoutes.GET("/:id/menus", menuHandler.GetMenusByStore)
	}
	apiGroup.GET("/menus/:id", menuHandler.GetMenuByID)
}

// SetupStoreRoutes sets up the owner-facing store management routes.
func SetupStoreRoutes(authenticatedGroup *gin.RouterGroup, storeHandler *handlers.StoreHandler, menuHandler *handlers.MenuHandler) {
	storeRoutes := authenticatedGroup.Group("/stores")
	storeRoutes.Use(middleware.RoleAuthMiddleware(models.RoleOwner, models.RoleAdmin))
	{
		storeRoutes.POST("", storeHandler.CreateStore)
		storeRoutes.PUT("/:id", storeHandler.UpdateStore)
		storeRoutes.DELETE("/:id", storeHandler.DeleteStore)
		storeRoutes.POST("/:id/menus", menuHandler.CreateMenu)
	}
}

// SetupMenuRoutes sets up the owner-facing menu management routes.
func SetupMenuRoutes(authenticatedGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := authenticatedGroup.Group("/menus")
	menuRoutes.Use(middleware.RoleAuthMiddleware(models.RoleOwner, models.RoleAdmin))
	{
		menuRoutes.PUT("/:id", menuHandler.UpdateMenu)
		menuRoutes.DELETE("/:id", menuHandler.DeleteMenu)
	}
}

// SetupOrderRoutes sets up the order routes. Customers place orders, store
// owners drive the status lifecycle, and read access is scoped per role
// inside the service.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleCustomer), orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/status", middleware.RoleAuthMiddleware(models.RoleOwner, models.RoleAdmin), orderHandler.UpdateOrderStatus)
	}
}

// SetupReportRoutes sets up the owner revenue and settlement report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/stores/:id/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleOwner, models.RoleAdmin))
	{
		reportRoutes.GET("/revenue", reportHandler.GetRevenueReport)
		reportRoutes.GET("/settlement", reportHandler.GetSettlementReport)
		reportRoutes.GET("/dashboard", reportHandler.GetDashboardSummary)
	}
}

// SetupPublicNoticeRoutes sets up read-only notice routes.
func SetupPublicNoticeRoutes(apiGroup *gin.RouterGroup, noticeHandler *handlers.NoticeHandler) {
	noticeRoutes := apiGroup.Group("/notices")
	{
		noticeRoutes.GET("", noticeHandler.GetNotices)
		noticeRoutes.GET("/:id", noticeHandler.GetNoticeByID)
	}
}

// SetupNoticeRoutes sets up the admin-only notice management routes.
func SetupNoticeRoutes(authenticatedGroup *gin.RouterGroup, noticeHandler *handlers.NoticeHandler) {
	noticeRoutes := authenticatedGroup.Group("/notices")
	noticeRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		noticeRoutes.POST("", noticeHandler.CreateNotice)
		noticeRoutes.PUT("/:id", noticeHandler.UpdateNotice)
		noticeRoutes.DELETE("/:id", noticeHandler.DeleteNotice)
	}
}

// SetupQnaRoutes sets up the question and answer routes. Any authenticated
// user may post and read; answering is restricted to owners and admins, with
// per-question ownership enforced in the service.
func SetupQnaRoutes(authenticatedGroup *gin.RouterGroup, qnaHandler *handlers.QnaHandler) {
	qnaRoutes := authenticatedGroup.Group("/questions")
	{
		qnaRoutes.POST("", qnaHandler.CreateQuestion)
		qnaRoutes.GET("", qnaHandler.GetQuestions)
		qnaRoutes.GET("/:id", qnaHandler.GetQuestionByID)
		qnaRoutes.POST("/:id/answer", middleware.RoleAuthMiddleware(models.RoleOwner, models.RoleAdmin), qnaHandler.AnswerQuestion)
		qnaRoutes.DELETE("/:id", qnaHandler.DeleteQuestion)
	}
}
