package routes

import (
	"os"
	"strings"

	"smartudhar-backend/config"
	"smartudhar-backend/controllers"
	"smartudhar-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/otp/request", controllers.RequestOTP)
		auth.POST("/otp/verify", controllers.VerifyOTP)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.POST("/:id/archive", controllers.ArchiveCustomer)
			customers.POST("/:id/restore", controllers.RestoreCustomer)

			// Ledger routes
			customers.POST("/:id/transactions", controllers.CreateTransaction)
			customers.GET("/:id/transactions", controllers.GetTransactions)
			customers.GET("/:id/statement", controllers.ExportStatement)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		api.PUT("/profile", controllers.UpdateProfile)
	}

	return r
}
