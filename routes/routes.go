package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kulupnet/kulup-server/controllers"
	"github.com/kulupnet/kulup-server/middleware"
	"github.com/kulupnet/kulup-server/models"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimitLogin(), controllers.Login)
			auth.POST("/google/login", middleware.RateLimitLogin(), controllers.GoogleLoginHandler)
		}
		api.GET("/me", middleware.AuthJWT(), controllers.Me)

		// Herkese açık içerik
		api.GET("/events", controllers.ListEvents)
		api.GET("/events/:slug", controllers.GetEvent)
		api.GET("/events/:slug/eligibility", controllers.GetEventEligibility)
		api.GET("/news", middleware.OptionalAuth(), controllers.ListNews)
		api.GET("/news/:id", controllers.GetNews)
		api.GET("/products", middleware.OptionalAuth(), controllers.ListProducts)
		api.GET("/internships", middleware.OptionalAuth(), controllers.ListInternships)

		// Dinamik form: renderer alanları okur, yanıt gönderir
		api.GET("/forms/:type/:id/fields", controllers.ListFields)
		api.POST("/forms/:type/:id/responses", middleware.RateLimitSubmit(), controllers.SubmitResponse)

		// Admin paneli
		admin := api.Group("/admin")
		admin.Use(middleware.AuthJWT())
		{
			users := admin.Group("/users")
			users.Use(middleware.RequireAdmin(), middleware.RequirePermission(models.PermUsersManage))
			{
				users.GET("", controllers.ListUsers)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id/role", controllers.UpdateUserRole)
				users.PUT("/:id/deactivate", controllers.DeactivateUser)
			}

			content := admin.Group("/")
			content.Use(middleware.RequirePermission(models.PermContentManage))
			{
				content.POST("/events", controllers.CreateEvent)
				content.PUT("/events/:slug", controllers.UpdateEvent)
				content.DELETE("/events/:slug", controllers.DeleteEvent)

				content.POST("/news", controllers.CreateNews)
				content.PUT("/news/:id", controllers.UpdateNews)
				content.DELETE("/news/:id", controllers.DeleteNews)

				content.POST("/products", controllers.CreateProduct)
				content.PUT("/products/:id", controllers.UpdateProduct)
				content.DELETE("/products/:id", controllers.DeleteProduct)

				content.POST("/internships", controllers.CreateInternship)
				content.PUT("/internships/:id", controllers.UpdateInternship)
				content.DELETE("/internships/:id", controllers.DeleteInternship)
			}

			formAdmin := admin.Group("/")
			formAdmin.Use(middleware.RequirePermission(models.PermFormsManage))
			{
				formAdmin.POST("/forms/:type/:id/fields", controllers.AddField)
				formAdmin.POST("/forms/:type/:id/fields/bulk", controllers.BulkSaveFields)
				formAdmin.PUT("/forms/:type/:id/fields/reorder", controllers.ReorderFields)
				formAdmin.PUT("/fields/:id", controllers.UpdateField)
				formAdmin.DELETE("/fields/:id", controllers.DeleteField)
			}

			respAdmin := admin.Group("/")
			respAdmin.Use(middleware.RequirePermission(models.PermResponsesRead))
			{
				respAdmin.GET("/forms/:type/:id/responses", controllers.ListResponses)
				respAdmin.DELETE("/responses/:id", controllers.DeleteResponse)
				respAdmin.POST("/forms/:type/:id/export", controllers.CreateExport)
				respAdmin.GET("/exports/:job_id", controllers.GetExport)
			}

			admin.POST("/uploads", middleware.RequirePermission(models.PermUploadsWrite), controllers.UploadFile)
			admin.GET("/activity", middleware.RequirePermission(models.PermActivityRead), controllers.ListActivity)
		}
	}
}
