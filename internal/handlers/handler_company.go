package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// registerCompanyRoutes exposes the company profile. Only administrators may change it.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, users portssvc.UserReaderSvc) {
	h := &companyHandler{companyService: companyService}

	rg.GET("/company", h.getProfile)
	rg.PUT("/company", middleware.RequireAdmin(users), h.updateProfile)
}

// getProfile godoc
// @Summary Get the company profile
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getProfile(c *gin.Context) {
	profile, err := h.companyService.GetCompanyProfile(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve company profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update the company profile
// @Tags company
// @Accept json
// @Produce json
// @Param profile body dto.UpdateCompanyProfileRequest true "Fields to update"
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /company [put]
func (h *companyHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	profile, err := h.companyService.UpdateCompanyProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to update company profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}
