package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// ListDestinations handles GET /api/v1/destinations - the public catalog,
// optionally filtered by category.
func ListDestinations(c *gin.Context) {
	db := config.GetDB()

	query := db.Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		// Categories live in a JSONB array; a LIKE against the serialized
		// column keeps the filter portable between Postgres and SQLite.
		query = query.Where("categories LIKE ?", "%\""+category+"\"%")
	}

	var destinations []models.Destination
	if err := query.Find(&destinations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to load destinations"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    destinations,
	})
}

// GetDestination handles GET /api/v1/destinations/:slug - accepts either the
// slug or a bare numeric id, matching the links the public site has issued
// over the years.
func GetDestination(c *gin.Context) {
	slug := c.Param("slug")
	db := config.GetDB()

	var destination models.Destination
	err := db.Where("slug = ?", slug).First(&destination).Error
	if err != nil {
		if id, parseErr := strconv.ParseUint(slug, 10, 64); parseErr == nil {
			err = db.First(&destination, uint(id)).Error
		}
	}
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    destination,
	})
}

// UpsertDestination handles POST /api/v1/admin/destinations - creates when no
// id is given, updates otherwise. Replaced CDN assets are deleted so the
// bucket doesn't accumulate orphans.
func UpsertDestination(c *gin.Context) {
	var req validation.UpsertDestinationRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()

	destination := models.Destination{
		ID:              req.ID,
		Slug:            req.Slug,
		Title:           req.Title,
		PriceTiers:      models.PriceTiers(req.PriceTiers),
		Duration:        req.Duration,
		MinPeople:       req.MinPeople,
		ImageURL:        req.ImageURL,
		ImageKey:        req.ImageKey,
		GalleryImages:   models.StringList(req.GalleryImages),
		GalleryKeys:     models.StringList(req.GalleryKeys),
		LongDescription: req.LongDescription,
		Itinerary:       models.Itinerary(req.Itinerary),
		MapLat:          req.MapLat,
		MapLng:          req.MapLng,
		Facilities:      models.StringList(req.Facilities),
		Categories:      models.StringList(req.Categories),
	}

	var orphanedKeys []string
	status := http.StatusCreated

	if req.ID > 0 {
		var existing models.Destination
		if err := db.First(&existing, req.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination not found"))
			return
		}
		orphanedKeys = replacedKeys(existing.AssetKeys(), destination.AssetKeys())
		destination.CreatedAt = existing.CreatedAt
		status = http.StatusOK
	}

	if err := db.Save(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to save destination"))
		return
	}

	if imageService := services.GetImageService(); imageService != nil {
		services.DeleteImages(imageService, orphanedKeys)
	}

	c.JSON(status, gin.H{
		"success": true,
		"data":    destination,
	})
}

// DeleteDestination handles DELETE /api/v1/admin/destinations/:id - removes
// the row and every CDN asset it owns.
func DeleteDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_DESTINATION_ID", "Destination id must be a number"))
		return
	}

	db := config.GetDB()
	var destination models.Destination
	if err := db.First(&destination, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination not found"))
		return
	}

	if err := db.Delete(&destination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to delete destination"))
		return
	}

	if imageService := services.GetImageService(); imageService != nil {
		services.DeleteImages(imageService, destination.AssetKeys())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// replacedKeys returns the keys present in before but absent from after.
func replacedKeys(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, key := range after {
		kept[key] = true
	}

	var orphaned []string
	for _, key := range before {
		if !kept[key] {
			orphaned = append(orphaned, key)
		}
	}
	return orphaned
}
