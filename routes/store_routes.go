package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/controllers"
)

// initStoreRoutes initializes the public storefront routes
func initStoreRoutes(router *gin.RouterGroup) {
	router.POST("/orders", controllers.SubmitOrder)
	router.POST("/payments", controllers.RecordPayment)
}
