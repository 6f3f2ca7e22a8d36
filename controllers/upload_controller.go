package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/services"
	"github.com/samudra-tours/samudra-tours-api/utils"
)

// UploadImage handles POST /api/v1/admin/uploads - accepts one multipart photo
// under the "image" field, stores it on the CDN and returns the key plus a
// presigned URL the admin UI can preview with.
func UploadImage(c *gin.Context) {
	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse("STORAGE_UNAVAILABLE", "Image storage is not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("MISSING_FILE", "Request must include an 'image' file"))
		return
	}

	key, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, errorResponse(uploadErr.Code, uploadErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("UPLOAD_FAILED", "Failed to store image"))
		return
	}

	url, err := imageService.GetImageURL(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("UPLOAD_FAILED", "Failed to resolve image URL"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"key": key,
			"url": url,
		},
	})
}

// DeleteImage handles DELETE /api/v1/admin/uploads?key= - removes one CDN
// object, used when the admin UI discards a photo before saving a record.
func DeleteImage(c *gin.Context) {
	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse("STORAGE_UNAVAILABLE", "Image storage is not configured"))
		return
	}

	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, errorResponse("MISSING_KEY", "Query parameter 'key' is required"))
		return
	}

	if err := imageService.DeleteImage(key); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DELETE_FAILED", "Failed to delete image"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
