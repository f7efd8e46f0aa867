// internal/handlers/opportunity.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/advisorbridge/advisorbridge-backend/internal/i18n"
	"github.com/advisorbridge/advisorbridge-backend/internal/services"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

type OpportunityHandler struct {
	opportunityService *services.OpportunityService
	applicationService *services.ApplicationService
}

func NewOpportunityHandler(
	opportunityService *services.OpportunityService,
	applicationService *services.ApplicationService,
) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		applicationService: applicationService,
	}
}

// POST /opportunities
func (h *OpportunityHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	opp, err := h.opportunityService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyOpportunityCreated),
		"opportunity": opp,
	})
}

// GET /opportunities
func (h *OpportunityHandler) Browse(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filters := services.OpportunityFilters{
		Status:         c.Query("status"),
		Expertise:      c.Query("expertise"),
		TimeCommitment: c.Query("time_commitment"),
		Search:         c.Query("search"),
	}
	withMatch := c.Query("match") == "1"

	views, err := h.opportunityService.Browse(userID, filters, withMatch)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, views)
}

// GET /opportunities/mine
func (h *OpportunityHandler) ListOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opps, err := h.opportunityService.ListOwn(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, opps)
}

// GET /opportunities/:id
func (h *OpportunityHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	opp, err := h.opportunityService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, opp)
}

// POST /opportunities/:id/view
func (h *OpportunityHandler) TrackView(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	count, err := h.opportunityService.TrackView(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"view_count": count})
}

// PUT /opportunities/:id
func (h *OpportunityHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	opp, err := h.opportunityService.Update(userID, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyOpportunityUpdated),
		"opportunity": opp,
	})
}

// PATCH /opportunities/:id
func (h *OpportunityHandler) Patch(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.PatchOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	opp, err := h.opportunityService.Patch(userID, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyOpportunityUpdated),
		"opportunity": opp,
	})
}

// DELETE /opportunities/:id
func (h *OpportunityHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.opportunityService.Delete(userID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOpportunityDeleted),
	})
}

// POST /opportunities/:id/apply
func (h *OpportunityHandler) Apply(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationService.Apply(userID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyApplicationSubmitted),
		"application_id": app.ID,
		"application":    app,
	})
}

// GET /opportunities/:id/applications
func (h *OpportunityHandler) ListApplications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForOpportunity(userID, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, apps)
}
