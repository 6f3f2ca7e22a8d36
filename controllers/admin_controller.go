package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/middleware"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
)

// GetMe handles GET /api/v1/admin/me - returns the operator's admin row. On
// the first request after provisioning, the name and email are synced from
// Auth0's userinfo endpoint so the row doesn't stay blank.
func GetMe(c *gin.Context) {
	auth0ID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse("UNAUTHORIZED", "Could not extract user information"))
		return
	}

	db := config.GetDB()
	var admin models.Admin
	if err := db.Where("auth0_id = ?", auth0ID).First(&admin).Error; err != nil {
		c.JSON(http.StatusForbidden, errorResponse("NOT_ADMIN", "This account has no admin access"))
		return
	}

	if admin.Email == "" {
		if token, tokenErr := middleware.GetAccessToken(c); tokenErr == nil {
			auth0Service := services.NewAuth0Service(config.GetConfig())
			if userInfo, infoErr := auth0Service.GetUserInfo(token); infoErr == nil {
				admin.Name = userInfo.Name
				admin.Email = userInfo.Email
				if err := db.Save(&admin).Error; err != nil {
					c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to update admin profile"))
					return
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    admin,
	})
}
