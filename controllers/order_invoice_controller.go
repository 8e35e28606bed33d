package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"storefront/models"
	"storefront/storage"
	"storefront/utils"
)

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	orderID := c.Param("id")
	order, err := store.FindOrder(orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.LogError("Order not found for invoice download: %s", orderID)
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to load order %s for invoice: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate invoice")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Storefront")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	if cfg.SiteURL != "" {
		pdf.Cell(100, 8, cfg.SiteURL)
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Order ID: "+order.ID)
	pdf.Cell(70, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(70, 8, "Status: "+order.Status)
	pdf.Ln(10)

	// Customer info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	if order.CustomerName != "" {
		pdf.Cell(100, 8, order.CustomerName)
		pdf.Ln(6)
	}
	pdf.Cell(100, 8, order.Email)
	pdf.Ln(6)
	if order.Phone != "" {
		pdf.Cell(100, 8, "Phone: "+order.Phone)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Amount table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Currency", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(90, 8, "Order total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, order.Currency, "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	if order.Status == models.OrderStatusPaid {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(100, 8, "PAID - thank you for your order.")
	} else {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, "Payment pending.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice")
		return
	}

	utils.LogInfo("Invoice generated for order %s", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
