package routes

import (
	"net/http"
	"os"
	"strings"

	"tuneshop-backend/config"
	"tuneshop-backend/controllers"
	"tuneshop-backend/repositories"
	"tuneshop-backend/storage"
	"tuneshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store *repositories.Store, fileStore storage.Storage) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": store.Available()})
	})

	userRepo := repositories.NewUserRepository(store)
	clientRepo := repositories.NewClientRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	timelineRepo := repositories.NewTimelineRepository(store)
	paymentRepo := repositories.NewPaymentRepository(store)
	fileRepo := repositories.NewFileRepository(store)
	settingRepo := repositories.NewSettingRepository(store)
	dashboardRepo := repositories.NewDashboardRepository(store)

	authController := controllers.NewAuthController(userRepo)
	clientController := controllers.NewClientController(clientRepo)
	orderController := controllers.NewOrderController(orderRepo, clientRepo, timelineRepo, paymentRepo, fileRepo)
	fileController := controllers.NewFileController(fileRepo, orderRepo, fileStore)
	dashboardController := controllers.NewDashboardController(dashboardRepo)
	settingsController := controllers.NewSettingsController(settingRepo)

	auth := r.Group("/auth")
	{
		auth.POST("/session", authController.Session)
		auth.GET("/me", authController.Me)
		auth.POST("/logout", authController.Logout)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.Create)
			clients.GET("", clientController.List)
			clients.GET("/:id", clientController.GetByID)
			clients.PUT("/:id", clientController.Update)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderController.Create)
			orders.GET("", orderController.List)
			orders.GET("/:id", orderController.GetByID)
			orders.PUT("/:id", orderController.Update)
			orders.POST("/:id/timeline", orderController.AddTimelineEvent)
			orders.GET("/:id/timeline", orderController.GetTimeline)
			orders.GET("/:id/files", orderController.GetFiles)
			orders.GET("/:id/payments", orderController.GetPayments)
			orders.POST("/:id/payments", orderController.CreatePayment)
		}

		files := api.Group("/files")
		{
			files.POST("", fileController.Upload)
			files.GET("/:id", fileController.GetByID)
			files.DELETE("/:id", fileController.Delete)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.Stats)
			dashboard.GET("/revenue-chart", dashboardController.RevenueChart)
			dashboard.GET("/top-clients", dashboardController.TopClients)
			dashboard.GET("/recent-orders", dashboardController.RecentOrders)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingsController.Get)
			settings.PUT("", settingsController.Update)
		}
	}

	return r
}
