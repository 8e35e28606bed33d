package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/utils"
)

// recentPaymentCount is how many payments the dashboard shows.
const recentPaymentCount = 10

// GetStats returns the dashboard aggregates: order counts, revenue from
// succeeded payments, and the most recent payments.
func GetStats(c *gin.Context) {
	utils.LogInfo("GetStats called")

	stats, err := store.Stats()
	if err != nil {
		utils.LogError("Failed to aggregate stats: %v", err)
		utils.InternalServerError(c, "Failed to get dashboard data")
		return
	}

	recentPayments, err := store.ListPayments(recentPaymentCount)
	if err != nil {
		utils.LogError("Failed to list recent payments: %v", err)
		utils.InternalServerError(c, "Failed to get dashboard data")
		return
	}
	if recentPayments == nil {
		recentPayments = []models.Payment{}
	}

	utils.Success(c, "Dashboard data retrieved successfully", gin.H{
		"totalOrders":    stats.TotalOrders,
		"paidOrders":     stats.PaidOrders,
		"totalRevenue":   stats.TotalRevenue,
		"recentPayments": recentPayments,
	})
}

// ListAllOrders returns every order, newest first, optionally paginated with
// page/per_page query parameters.
func ListAllOrders(c *gin.Context) {
	utils.LogInfo("ListAllOrders called")

	orders, err := store.ListOrders()
	if err != nil {
		utils.LogError("Failed to list orders: %v", err)
		utils.InternalServerError(c, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	pageParam := c.Query("page")
	if pageParam == "" {
		utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
		return
	}

	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		utils.BadRequest(c, "Invalid page parameter", nil)
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 1 {
		utils.BadRequest(c, "Invalid per_page parameter", nil)
		return
	}

	total := int64(len(orders))
	start := (page - 1) * perPage
	if start > len(orders) {
		start = len(orders)
	}
	end := start + perPage
	if end > len(orders) {
		end = len(orders)
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", gin.H{"orders": orders[start:end]}, total, page, perPage)
}
