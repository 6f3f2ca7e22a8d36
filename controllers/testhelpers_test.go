package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/middleware"
	"github.com/samudra-tours/samudra-tours-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Destination{},
		&models.Order{},
		&models.BlogPost{},
		&models.Review{},
		&models.AppSettings{},
		&models.Admin{},
		&models.Invoice{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		GoEnv:         "test",
		PublicBaseURL: "http://localhost:8080",
	})

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

// mockAuthMiddleware simulates a validated Auth0 session the same way the
// real JWT middleware does
func mockAuthMiddleware(auth0ID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", auth0ID)

		mockClaims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{
				Subject: auth0ID,
			},
			CustomClaims: &middleware.CustomClaims{},
		}
		c.Set("validated_claims", mockClaims)

		c.Next()
	}
}

// seedDestination inserts the standard group-priced trip used across the
// controller tests: cheaper per head as the group grows, minimum two people.
func seedDestination(t *testing.T, db *gorm.DB) models.Destination {
	t.Helper()

	destination := models.Destination{
		Slug:  "komodo-sailing-trip",
		Title: "Komodo Sailing Trip",
		PriceTiers: models.PriceTiers{
			{MinPeople: 2, Price: 1200000},
			{MinPeople: 5, Price: 1100000},
			{MinPeople: 9, Price: 1000000},
		},
		Duration:   3,
		MinPeople:  2,
		ImageURL:   "https://cdn.test/photos/komodo.jpg",
		ImageKey:   "photos/komodo.jpg",
		Categories: models.StringList{"sailing", "island"},
	}
	if err := db.Create(&destination).Error; err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}
	return destination
}

// seedOrder inserts an order in the given status for the seeded destination.
func seedOrder(t *testing.T, db *gorm.DB, destination models.Destination, status string) models.Order {
	t.Helper()

	order := models.Order{
		ID:               models.NewOrderID(time.Now()),
		CustomerName:     "Rina Kusuma",
		CustomerPhone:    "081234567890",
		DestinationID:    destination.ID,
		DestinationTitle: destination.Title,
		Participants:     5,
		OrderDate:        time.Now(),
		Status:           status,
		TotalPrice:       models.OrderTotal(destination.PriceTiers, 5),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}

// performJSON marshals body and runs the request through the router.
func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseResponse decodes the JSON envelope from a recorder.
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON: %v (body: %s)", err, w.Body.String())
	}
	return response
}

// errorCode extracts error.code from a parsed envelope.
func errorCode(t *testing.T, response map[string]interface{}) string {
	t.Helper()

	errorData, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %v", response)
	}
	code, _ := errorData["code"].(string)
	return code
}
