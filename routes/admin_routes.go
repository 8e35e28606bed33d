package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/controllers"
	"storefront/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes. Logout stays outside the session guard on
		// purpose: it clears whatever session is present and succeeds
		// unconditionally, so a 401 here would only strand expired clients.
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)
		admin.GET("/check", controllers.AdminCheck)

		// Protected admin routes
		admin.Use(middleware.AdminSessionMiddleware())
		{
			admin.GET("/stats", controllers.GetStats)
			admin.GET("/orders", controllers.ListAllOrders)
			admin.GET("/orders/export", controllers.ExportOrdersExcel)
			admin.GET("/orders/:id/invoice", controllers.DownloadInvoice)
		}
	}
}
