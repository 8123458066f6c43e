package handler

import (
	"net/http"

	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/api/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

// GetProfile returns the taxpayer used on generated declarations.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.profileService.Get()))
}

// UpdateProfile replaces the taxpayer record.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.profileService.Update(req)))
}
