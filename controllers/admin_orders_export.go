package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"storefront/utils"
)

// ExportOrdersExcel downloads all orders as an Excel workbook with a summary
// block on top.
func ExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportOrdersExcel called")

	orders, err := store.ListOrders()
	if err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		utils.LogError("Failed to aggregate stats for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders")
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet")
		return
	}

	// Summary block
	row := sheet.AddRow()
	row.AddCell().Value = "Orders Export"
	row.AddCell().Value = time.Now().Format("2006-01-02 15:04:05")
	row = sheet.AddRow()
	row.AddCell().Value = "Total Orders"
	row.AddCell().SetInt64(stats.TotalOrders)
	row = sheet.AddRow()
	row.AddCell().Value = "Paid Orders"
	row.AddCell().SetInt64(stats.PaidOrders)
	row = sheet.AddRow()
	row.AddCell().Value = "Total Revenue"
	row.AddCell().SetFloat(stats.TotalRevenue)
	sheet.AddRow()

	// Header row
	header := sheet.AddRow()
	for _, title := range []string{"Order ID", "Customer", "Email", "Phone", "Amount", "Currency", "Status", "Created At"} {
		header.AddCell().Value = title
	}

	for i := range orders {
		order := &orders[i]
		row := sheet.AddRow()
		row.AddCell().Value = order.ID
		row.AddCell().Value = order.CustomerName
		row.AddCell().Value = order.Email
		row.AddCell().Value = order.Phone
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().Value = order.Currency
		row.AddCell().Value = order.Status
		row.AddCell().Value = order.CreatedAt.Format(time.RFC3339)
	}
	utils.LogDebug("Exported %d orders to Excel", len(orders))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
