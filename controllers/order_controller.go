package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// CreateOrder handles POST /api/v1/orders - the public booking intake.
// The total price is always recomputed from the destination's tiers; the
// client never gets to name its own price.
func CreateOrder(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()
	var destination models.Destination
	if err := db.First(&destination, req.DestinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination not found"))
		return
	}

	if req.Participants < destination.MinPeople {
		c.JSON(http.StatusBadRequest, errorResponse("BELOW_MINIMUM", "below minimum participants"))
		return
	}

	now := time.Now()
	order := models.Order{
		ID:               models.NewOrderID(now),
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		DestinationID:    destination.ID,
		DestinationTitle: destination.Title,
		Participants:     req.Participants,
		OrderDate:        now,
		Status:           models.StatusNew,
		TotalPrice:       models.OrderTotal(destination.PriceTiers, req.Participants),
	}
	if req.DepartureDate != "" {
		order.DepartureDate = &req.DepartureDate
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to create order"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// ListOrders handles GET /api/v1/admin/orders - newest first, optionally
// filtered by status.
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	query := db.Order("order_date DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to load orders"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// GetOrder handles GET /api/v1/admin/orders/:id
func GetOrder(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ContactCustomer handles POST /api/v1/admin/orders/:id/contact - records the
// first operator contact and returns the composed WhatsApp greeting alongside
// the transitioned order.
func ContactCustomer(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	updated := order
	if err := updated.Contact(); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.GetDB().Save(&updated).Error; err != nil {
		respondDomainError(c, err)
		return
	}

	settings := loadSettings()
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         updated,
		"whatsapp_url": services.ComposeContactMessage(&updated, &settings),
	})
}

// RecordPayment handles POST /api/v1/admin/orders/:id/payments
func RecordPayment(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	var req validation.RecordPaymentRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	updated := order
	if err := updated.RecordPayment(req.Amount, req.Notes, time.Now()); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.GetDB().Save(&updated).Error; err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// CompleteOrder handles POST /api/v1/admin/orders/:id/complete
func CompleteOrder(c *gin.Context) {
	transitionOrder(c, func(o *models.Order) error { return o.MarkComplete() })
}

// CancelOrder handles POST /api/v1/admin/orders/:id/cancel
func CancelOrder(c *gin.Context) {
	transitionOrder(c, func(o *models.Order) error { return o.Cancel() })
}

// UpdateParticipants handles PATCH /api/v1/admin/orders/:id/participants -
// changes the group size and reprices the order against the destination's
// current tiers.
func UpdateParticipants(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	var req validation.UpdateParticipantsRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()
	var destination models.Destination
	if err := db.First(&destination, order.DestinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination for this order no longer exists"))
		return
	}

	updated := order
	if err := updated.SetParticipants(req.Participants, destination.MinPeople, destination.PriceTiers); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := db.Save(&updated).Error; err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// UpdateDepartureDate handles PATCH /api/v1/admin/orders/:id/departure-date
func UpdateDepartureDate(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	var req validation.UpdateDepartureDateRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	updated := order
	if err := updated.SetDepartureDate(req.DepartureDate); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.GetDB().Save(&updated).Error; err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// DeleteOrder handles DELETE /api/v1/admin/orders/:id
func DeleteOrder(c *gin.Context) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	if err := config.GetDB().Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to delete order"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// transitionOrder applies a body-less state machine event to the order in the
// :id path param. The event runs against a detached copy, so a failed
// persistence write leaves the stored row exactly as it was.
func transitionOrder(c *gin.Context, event func(*models.Order) error) {
	order, ok := loadOrder(c)
	if !ok {
		return
	}

	updated := order
	if err := event(&updated); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := config.GetDB().Save(&updated).Error; err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
	})
}

// loadOrder resolves the :id path param into an order row, answering 400/404
// itself when that fails.
func loadOrder(c *gin.Context) (models.Order, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_ORDER_ID", "Order id must be a number"))
		return models.Order{}, false
	}

	var order models.Order
	if err := config.GetDB().First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("ORDER_NOT_FOUND", "Order not found"))
		return models.Order{}, false
	}
	return order, true
}

// loadSettings fetches the settings singleton, falling back to defaults when
// no operator has saved settings yet.
func loadSettings() models.AppSettings {
	var settings models.AppSettings
	if err := config.GetDB().First(&settings, models.AppSettingsID).Error; err != nil {
		return models.DefaultAppSettings()
	}
	return settings
}
