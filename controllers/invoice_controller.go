package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// CreateInvoice handles POST /api/v1/admin/invoices - issues a shareable bill
// for an order. The billed total always comes from the order row; a client
// total that disagrees is ignored.
func CreateInvoice(c *gin.Context) {
	var req validation.CreateInvoiceRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("ORDER_NOT_FOUND", "Order not found"))
		return
	}

	invoice := models.Invoice{
		OrderID:    order.ID,
		Total:      order.TotalPrice,
		ShareToken: uuid.NewString(),
	}

	if err := db.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to create invoice"))
		return
	}

	shareURL := fmt.Sprintf("%s/api/v1/invoices/shared/%s", config.GetConfig().PublicBaseURL, invoice.ShareToken)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"invoice":   invoice,
			"share_url": shareURL,
		},
	})
}

// GetSharedInvoice handles GET /api/v1/invoices/shared/:token - the public,
// unauthenticated invoice download. The token is the only credential.
func GetSharedInvoice(c *gin.Context) {
	db := config.GetDB()

	var invoice models.Invoice
	if err := db.Where("share_token = ?", c.Param("token")).First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("INVOICE_NOT_FOUND", "Invoice not found"))
		return
	}

	var order models.Order
	if err := db.First(&order, invoice.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("ORDER_NOT_FOUND", "Order for this invoice no longer exists"))
		return
	}

	settings := loadSettings()
	pdf, err := services.BuildInvoicePDF(&invoice, &order, &settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("PDF_ERROR", "Failed to render invoice"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%d.pdf", invoice.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
