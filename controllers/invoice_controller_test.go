package controllers

import (
	"net/http"
	"testing"

	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoice(t *testing.T) {
	db := setupTestDB(t)
	destination := seedDestination(t, db)
	order := seedOrder(t, db, destination, models.StatusAwaitingPayment)

	router := setupTestRouter()
	router.POST("/invoices", CreateInvoice)

	// A lowballed client total is ignored; the order row is what gets billed
	w := performJSON(router, http.MethodPost, "/invoices", map[string]interface{}{
		"orderId": order.ID,
		"total":   1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	invoice := data["invoice"].(map[string]interface{})
	assert.Equal(t, order.TotalPrice, invoice["total"])
	assert.NotEmpty(t, invoice["share_token"])
	assert.Contains(t, data["share_url"].(string), "/api/v1/invoices/shared/"+invoice["share_token"].(string))

	// Unknown order
	w = performJSON(router, http.MethodPost, "/invoices", map[string]interface{}{
		"orderId": 42,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", errorCode(t, parseResponse(t, w)))
}

func TestGetSharedInvoice(t *testing.T) {
	db := setupTestDB(t)
	destination := seedDestination(t, db)
	order := seedOrder(t, db, destination, models.StatusAwaitingPayment)

	invoice := models.Invoice{
		OrderID:    order.ID,
		Total:      order.TotalPrice,
		ShareToken: "0b2e8f3a-test-token",
	}
	require.NoError(t, db.Create(&invoice).Error)

	router := setupTestRouter()
	router.GET("/invoices/shared/:token", GetSharedInvoice)

	w := performJSON(router, http.MethodGet, "/invoices/shared/0b2e8f3a-test-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Greater(t, w.Body.Len(), 4)
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	// A wrong token reveals nothing
	w = performJSON(router, http.MethodGet, "/invoices/shared/guessed-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INVOICE_NOT_FOUND", errorCode(t, parseResponse(t, w)))
}
