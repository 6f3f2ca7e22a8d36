package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// GetSettings handles GET /api/v1/settings - the public site configuration.
// Defaults are served until an operator saves settings for the first time.
func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    loadSettings(),
	})
}

// UpsertSettings handles PUT /api/v1/admin/settings - replaces the singleton
// row wholesale. The id is pinned so a second row can never appear.
func UpsertSettings(c *gin.Context) {
	var req validation.UpsertSettingsRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	settings := models.AppSettings{
		ID:                models.AppSettingsID,
		Theme:             req.Theme,
		AccentColor:       req.AccentColor,
		BrandName:         req.BrandName,
		Tagline:           req.Tagline,
		LogoLightURL:      req.LogoLightURL,
		LogoDarkURL:       req.LogoDarkURL,
		Email:             req.Email,
		Address:           req.Address,
		WhatsappNumber:    req.WhatsappNumber,
		FacebookURL:       req.FacebookURL,
		InstagramURL:      req.InstagramURL,
		TwitterURL:        req.TwitterURL,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountHolder: req.BankAccountHolder,
		HeroSlides:        models.HeroSlides(req.HeroSlides),
	}
	if settings.Theme == "" {
		settings.Theme = "light"
	}

	if err := config.GetDB().Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to save settings"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}
