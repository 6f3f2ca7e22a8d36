package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// ListReviews handles GET /api/v1/reviews - newest first, optionally scoped to
// one destination via ?destination_id=.
func ListReviews(c *gin.Context) {
	db := config.GetDB()

	query := db.Order("created_at DESC")
	if raw := c.Query("destination_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("INVALID_DESTINATION_ID", "Destination id must be a number"))
			return
		}
		query = query.Where("destination_id = ?", uint(id))
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to load reviews"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reviews,
	})
}

// CreateReview handles POST /api/v1/reviews - the public review intake. When a
// destination id is given it must refer to an existing catalog entry.
func CreateReview(c *gin.Context) {
	var req validation.CreateReviewRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()

	if req.DestinationID != nil {
		var destination models.Destination
		if err := db.First(&destination, *req.DestinationID).Error; err != nil {
			c.JSON(http.StatusNotFound, errorResponse("DESTINATION_NOT_FOUND", "Destination not found"))
			return
		}
	}

	review := models.Review{
		Name:          req.Name,
		Rating:        req.Rating,
		Comment:       req.Comment,
		DestinationID: req.DestinationID,
	}

	if err := db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to save review"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review,
	})
}

// DeleteReview handles DELETE /api/v1/admin/reviews/:id
func DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_REVIEW_ID", "Review id must be a number"))
		return
	}

	db := config.GetDB()
	var review models.Review
	if err := db.First(&review, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("REVIEW_NOT_FOUND", "Review not found"))
		return
	}

	if err := db.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to delete review"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
