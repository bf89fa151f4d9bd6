package routes

import (
	"revsplit/constants"
	"revsplit/controllers"
	middlewares "revsplit/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	authController := controllers.NewAuthController(db)
	collectionController := controllers.NewCollectionController(db, redisCli)
	configController := controllers.NewRevenueConfigController(db)
	shareController := controllers.NewShareController(db)
	attributionController := controllers.NewAttributionController(db)
	eventController := controllers.NewRevenueEventController(db, redisCli)
	reportController := controllers.NewReportController(db)

	admin := []int{constants.RoleAdmin, constants.RoleOwner}

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authController.Login)

	v1.POST("/collections", middlewares.AuthMiddleware(), collectionController.CreateCollection)
	v1.PUT("/collectionMembers", middlewares.AuthMiddleware(admin...), collectionController.UpsertMember)
	v1.POST("/products", middlewares.AuthMiddleware(), collectionController.CreateProduct)
	v1.PUT("/wallet", middlewares.AuthMiddleware(), collectionController.UpdateWallet)

	v1.PUT("/revenueConfig", middlewares.AuthMiddleware(admin...), configController.UpsertConfig)
	v1.GET("/revenueConfig/:id", middlewares.AuthMiddleware(), configController.GetConfig)

	v1.POST("/shares", middlewares.AuthMiddleware(admin...), shareController.SetIndividualShare)
	v1.GET("/shares", middlewares.AuthMiddleware(), shareController.ListActiveShares)
	v1.PUT("/sharesDeactivate", middlewares.AuthMiddleware(admin...), shareController.DeactivateShare)

	v1.POST("/attributions", middlewares.AuthMiddleware(admin...), attributionController.RegisterAttribution)
	v1.GET("/attribution", middlewares.AuthMiddleware(), attributionController.LookupAttribution)
	v1.GET("/attributions", middlewares.AuthMiddleware(), attributionController.ListAttributions)

	// Endpoint nội bộ cho order service khi sale hoàn tất
	v1.POST("/revenueEvents", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleOrderSvc), eventController.RecordRevenueEvent)

	v1.GET("/revenueEvents", middlewares.AuthMiddleware(admin...), eventController.History)
	v1.GET("/revenueEvents/:id", middlewares.AuthMiddleware(admin...), eventController.GetEvent)
	v1.PUT("/revenueEventProcessed", middlewares.AuthMiddleware(admin...), eventController.MarkProcessed)
	v1.PUT("/revenueEventFailed", middlewares.AuthMiddleware(admin...), eventController.MarkFailed)
	v1.PUT("/revenueEventDisputed", middlewares.AuthMiddleware(admin...), eventController.MarkDisputed)
	v1.PUT("/revenueEventRetry", middlewares.AuthMiddleware(admin...), eventController.Retry)

	v1.GET("/dailyRevenue", middlewares.AuthMiddleware(admin...), reportController.DailyRevenue)
}
